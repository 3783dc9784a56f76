package gateway

import (
	"mojicode/internal/models"
	"mojicode/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /app/users/:email.
func (g *Gateway) GetUser(c *fiber.Ctx) error {
	user, err := g.identity.GetUser(c.Context(), c.Params("email"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /app/users/search?first_name=&last_name=.
func (g *Gateway) SearchUsers(c *fiber.Ctx) error {
	users, err := g.identity.SearchByName(c.Context(), c.Query("first_name"), c.Query("last_name"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(users)
}

// UpdateUser handles PUT /app/users/:email. Accounts can only update
// themselves.
func (g *Gateway) UpdateUser(c *fiber.Ctx) error {
	email := c.Params("email")
	if currentEmail(c) != email {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := g.identity.UpdateUser(c.Context(), email, service.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}
