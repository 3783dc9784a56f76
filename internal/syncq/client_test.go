package syncq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mojicode/internal/assetcache"
	"mojicode/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDoReturnsResponseWithoutQueueing(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(q, srv.Client(), nil)
	entry, err := c.Do(ctx, "POST", srv.URL+"/posts", nil, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, entry.Status)
	assert.Equal(t, []byte(`{"id":1}`), entry.Body)

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, depth)
}

func TestClientDoSemanticFailureIsNotQueued(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(q, srv.Client(), nil)
	entry, err := c.Do(ctx, "POST", srv.URL+"/posts", nil, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, entry.Status)

	// The server answered; nothing to replay later.
	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, depth)
}

func TestClientDoQueuesOnTransportFailure(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(q, nil, nil)
	headers := http.Header{"Content-Type": []string{"application/json"}}
	_, err := c.Do(ctx, "POST", url+"/posts", headers, []byte(`{"content":"hi"}`))
	assert.True(t, models.IsNetworkFailure(err))

	pending, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "POST", pending[0].Method)
	assert.Equal(t, url+"/posts", pending[0].URL)
	assert.Equal(t, []byte(`{"content":"hi"}`), pending[0].Body)
}

func TestClientDoFallsBackToCachedResponse(t *testing.T) {
	q := setupQueue(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	// Warm the cache with the response the URL served while online.
	live := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("cached feed"))
	}))
	cache := assetcache.NewController(rdb, live.Client(), "v1", live.URL)
	_, err := cache.Fetch(ctx, "/posts")
	require.NoError(t, err)
	live.Close()

	c := NewClient(q, live.Client(), cache)
	entry, err := c.Do(ctx, "POST", "/posts", nil, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, []byte("cached feed"), entry.Body)

	// The request is still queued for replay even though the caller got a
	// degraded response.
	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, depth)
}
