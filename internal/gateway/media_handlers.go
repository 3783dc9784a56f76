package gateway

import (
	"mojicode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia handles POST /app/media. The body is stored opaquely with the
// declared Content-Type.
func (g *Gateway) UploadMedia(c *fiber.Ctx) error {
	blob := c.Body()
	mimeType := c.Get("Content-Type", "application/octet-stream")

	media, err := g.media.Store(c.Context(), currentEmail(c), blob, mimeType)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// GetMedia handles GET /app/media/:id, serving the blob with its declared
// MIME type.
func (g *Gateway) GetMedia(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	media, err := g.media.Get(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	c.Set("Content-Type", media.MimeType)
	return c.Send(media.Blob)
}
