package gateway

import (
	"strings"

	"mojicode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// authRequired enforces a valid session token and stores the account email
// in the request context.
func (g *Gateway) authRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	email, err := g.sessions.Validate(parts[1])
	if err != nil {
		return models.RespondWithError(c, err)
	}

	c.Locals("email", email)
	return c.Next()
}

// currentEmail returns the authenticated account email set by authRequired.
func currentEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals("email").(string); ok {
		return email
	}
	return ""
}
