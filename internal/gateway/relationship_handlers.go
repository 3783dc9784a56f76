package gateway

import (
	"mojicode/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike handles POST /app/posts/:id/like.
func (g *Gateway) ToggleLike(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	liked, err := g.relationships.ToggleLike(c.Context(), id, currentEmail(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"liked": liked})
}

// ListLikes handles GET /app/posts/:id/likes.
func (g *Gateway) ListLikes(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	likes, err := g.relationships.GetLikes(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(likes)
}

// ToggleFollow handles POST /app/users/:email/follow.
func (g *Gateway) ToggleFollow(c *fiber.Ctx) error {
	following, err := g.relationships.ToggleFollow(c.Context(), currentEmail(c), c.Params("email"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /app/users/:email/followers.
func (g *Gateway) GetFollowers(c *fiber.Ctx) error {
	followers, err := g.relationships.GetFollowers(c.Context(), c.Params("email"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(followers)
}

// GetFollowing handles GET /app/users/:email/following.
func (g *Gateway) GetFollowing(c *fiber.Ctx) error {
	following, err := g.relationships.GetFollowing(c.Context(), c.Params("email"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(following)
}
