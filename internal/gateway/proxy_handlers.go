package gateway

import (
	"net/http"

	"mojicode/internal/assetcache"
	"mojicode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// upstreamURL resolves a request path against the configured API upstream,
// falling back to the origin.
func (g *Gateway) upstreamURL(path string) string {
	base := g.config.APIUpstream
	if base == "" {
		base = g.config.Origin
	}
	return base + path
}

// HandleAPI forwards API-prefix requests. These bypass the asset cache
// entirely: reads go straight to the network, mutating calls go through the
// sync-queue client so a transport failure degrades to "saved for later".
func (g *Gateway) HandleAPI(c *fiber.Ctx) error {
	url := g.upstreamURL(c.OriginalURL())
	headers := http.Header{}
	c.Request().Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})

	var entry *assetcache.Entry
	var err error

	switch c.Method() {
	case fiber.MethodGet, fiber.MethodHead:
		entry, err = g.client.Do(c.Context(), c.Method(), url, headers, nil)
	default:
		body := make([]byte, len(c.Body()))
		copy(body, c.Body())
		entry, err = g.client.Do(c.Context(), c.Method(), url, headers, body)
	}
	if err != nil {
		if models.IsNetworkFailure(err) {
			// Queued for replay; tell the caller the write is pending.
			return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
				"status": "queued",
			})
		}
		return models.RespondWithError(c, err)
	}

	return sendEntry(c, entry)
}

// HandleStatic applies the cache-first policy to same-origin asset requests.
func (g *Gateway) HandleStatic(c *fiber.Ctx) error {
	entry, err := g.cache.Fetch(c.Context(), c.OriginalURL())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return sendEntry(c, entry)
}

func sendEntry(c *fiber.Ctx, entry *assetcache.Entry) error {
	for key, values := range entry.Header {
		for _, value := range values {
			c.Set(key, value)
		}
	}
	return c.Status(entry.Status).Send(entry.Body)
}
