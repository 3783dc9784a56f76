package assetcache

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mojicode/internal/models"
	"mojicode/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Entry is a cached response envelope.
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Controller is the versioned asset cache plus its cache-first fetch policy.
// One named version is active at a time; Activate removes every other
// version's entries.
type Controller struct {
	rdb     *redis.Client
	client  *http.Client
	version string
	origin  string
}

// NewController returns a Controller for the given active cache version.
// A nil redis client degrades every lookup to a miss and every store to a
// no-op, so callers always reach the network.
func NewController(rdb *redis.Client, httpClient *http.Client, version, origin string) *Controller {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Controller{
		rdb:     rdb,
		client:  httpClient,
		version: version,
		origin:  strings.TrimSuffix(origin, "/"),
	}
}

// Version returns the active cache version name.
func (c *Controller) Version() string {
	return c.version
}

// Install populates the active cache version with the manifest's assets.
// Population is all-or-nothing: every asset is fetched before anything is
// written, and any fetch failure aborts the whole installation.
func (c *Controller) Install(ctx context.Context, manifest []string) error {
	if c.rdb == nil {
		return models.NewInternalError(fmt.Errorf("asset cache backend unavailable"))
	}

	staged := make(map[string]*Entry, len(manifest))
	for _, url := range manifest {
		entry, err := c.fetchEntry(ctx, c.absolute(url))
		if err != nil {
			return models.NewNetworkFailureError(fmt.Errorf("install %s: %w", url, err))
		}
		if entry.Status != http.StatusOK {
			return models.NewNetworkFailureError(fmt.Errorf("install %s: status %d", url, entry.Status))
		}
		staged[url] = entry
	}

	pipe := c.rdb.Pipeline()
	for url, entry := range staged {
		payload, err := json.Marshal(entry)
		if err != nil {
			return models.NewInternalError(err)
		}
		pipe.Set(ctx, assetKey(c.version, url), payload, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return models.NewInternalError(err)
	}

	observability.GlobalLogger.Info("Asset cache installed",
		slog.String("version", c.version),
		slog.Int("assets", len(staged)),
	)
	return nil
}

// Activate deletes every cache version other than the active one.
func (c *Controller) Activate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}

	var stale []string
	iter := c.rdb.Scan(ctx, 0, keyPrefix+":*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if v := keyVersion(key); v != "" && v != c.version {
			stale = append(stale, key)
		}
	}
	if err := iter.Err(); err != nil {
		return models.NewInternalError(err)
	}

	if len(stale) > 0 {
		if err := c.rdb.Del(ctx, stale...).Err(); err != nil {
			return models.NewInternalError(err)
		}
		observability.GlobalLogger.Info("Removed stale cache versions",
			slog.String("active", c.version),
			slog.Int("removed_keys", len(stale)),
		)
	}
	return nil
}

// Lookup returns the cached entry for url in the active version. A miss is
// (nil, false, nil), never an error.
func (c *Controller) Lookup(ctx context.Context, url string) (*Entry, bool, error) {
	if c.rdb == nil {
		return nil, false, nil
	}

	payload, err := c.rdb.Get(ctx, assetKey(c.version, url)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, models.NewInternalError(err)
	}

	var entry Entry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, false, models.NewInternalError(err)
	}
	return &entry, true, nil
}

// Fetch applies the cache-first policy for a same-origin, non-API request:
// return the cached entry when present, otherwise go to the network and
// cache a copy of a successful same-origin response before returning it.
// Error and cross-origin responses pass through uncached.
func (c *Controller) Fetch(ctx context.Context, url string) (*Entry, error) {
	if entry, ok, err := c.Lookup(ctx, url); err == nil && ok {
		observability.AssetCacheHits.WithLabelValues(c.version).Inc()
		return entry, nil
	}
	observability.AssetCacheMisses.WithLabelValues(c.version).Inc()

	absolute := c.absolute(url)
	entry, err := c.fetchEntry(ctx, absolute)
	if err != nil {
		return nil, models.NewNetworkFailureError(err)
	}

	if entry.Status == http.StatusOK && c.sameOrigin(absolute) {
		c.store(ctx, url, entry)
	}
	return entry, nil
}

func (c *Controller) store(ctx context.Context, url string, entry *Entry) {
	if c.rdb == nil {
		return
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, assetKey(c.version, url), payload, 0).Err(); err != nil {
		observability.GlobalLogger.Warn("Asset cache store failed",
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Controller) fetchEntry(ctx context.Context, url string) (*Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Entry{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   body,
	}, nil
}

// absolute resolves a path-style manifest URL against the configured origin.
func (c *Controller) absolute(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return c.origin + url
}

func (c *Controller) sameOrigin(url string) bool {
	return strings.HasPrefix(url, c.origin+"/") || url == c.origin
}
