package syncq

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"mojicode/internal/assetcache"
	"mojicode/internal/models"
	"mojicode/internal/observability"
)

// Client issues mutating API requests. A transport-level failure queues the
// request envelope for replay and degrades the caller's result to the cached
// response when one exists; the write becomes "saved for later" instead of a
// hard failure.
type Client struct {
	queue  *Queue
	client *http.Client
	cache  *assetcache.Controller
}

// NewClient returns a Client. cache may be nil; queueing still happens, the
// degraded response is just never available.
func NewClient(queue *Queue, httpClient *http.Client, cache *assetcache.Controller) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{queue: queue, client: httpClient, cache: cache}
}

// Do issues the mutating request. On a network response of any status the
// response envelope is returned as is. On a transport failure the envelope
// is queued durably; the cached response is returned when the asset cache
// holds one, otherwise the NetworkFailure surfaces with the queue having
// accepted the request.
func (c *Client) Do(ctx context.Context, method, url string, headers http.Header, body []byte) (*assetcache.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for key, values := range headers {
		req.Header[key] = values
	}

	resp, err := c.client.Do(req)
	if err == nil {
		defer resp.Body.Close()
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, models.NewInternalError(readErr)
		}
		return &assetcache.Entry{
			Status: resp.StatusCode,
			Header: resp.Header,
			Body:   respBody,
		}, nil
	}

	if _, queueErr := c.queue.Enqueue(ctx, method, url, headers, body); queueErr != nil {
		// Could not save for later either; the original failure stands.
		observability.GlobalLogger.Error("Failed to queue request for sync",
			slog.String("url", url),
			slog.String("error", queueErr.Error()),
		)
		return nil, models.NewNetworkFailureError(err)
	}

	observability.GlobalLogger.Info("Request queued for background sync",
		slog.String("method", method),
		slog.String("url", url),
	)

	if c.cache != nil {
		if entry, ok, cacheErr := c.cache.Lookup(ctx, url); cacheErr == nil && ok {
			return entry, nil
		}
	}
	return nil, models.NewNetworkFailureError(err)
}
