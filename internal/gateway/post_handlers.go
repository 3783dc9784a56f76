package gateway

import (
	"strconv"

	"mojicode/internal/models"
	"mojicode/internal/service"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, models.NewValidationError("Invalid id")
	}
	return uint(id), nil
}

// CreatePost handles POST /app/posts.
func (g *Gateway) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := g.posts.CreatePost(c.Context(), service.CreatePostInput{
		AuthorEmail: currentEmail(c),
		Content:     req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts handles GET /app/posts?author=.
func (g *Gateway) ListPosts(c *fiber.Ctx) error {
	posts, err := g.posts.GetPosts(c.Context(), c.Query("author"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /app/posts/:id.
func (g *Gateway) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	post, err := g.posts.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /app/posts/:id. Only the author may update.
func (g *Gateway) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	existing, err := g.posts.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing.AuthorEmail != currentEmail(c) {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := g.posts.UpdatePost(c.Context(), id, service.UpdatePostInput{Content: req.Content})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /app/posts/:id. Only the author may delete.
// Comments and likes on the post are left in place.
func (g *Gateway) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	existing, err := g.posts.GetPost(c.Context(), id)
	if err != nil {
		if models.IsNotFound(err) {
			// Delete of an absent key succeeds.
			return c.SendStatus(fiber.StatusNoContent)
		}
		return models.RespondWithError(c, err)
	}
	if existing.AuthorEmail != currentEmail(c) {
		return models.RespondWithError(c, models.NewInvalidCredentialsError())
	}

	if err := g.posts.DeletePost(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComment handles POST /app/posts/:id/comments.
func (g *Gateway) AddComment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := g.comments.AddComment(c.Context(), id, currentEmail(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /app/posts/:id/comments.
func (g *Gateway) ListComments(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	comments, err := g.comments.GetComments(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(comments)
}
