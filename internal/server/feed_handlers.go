package server

import (
	"aesn/internal/models"
	"aesn/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /feed?limit=&page=
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	posts, err := s.feedService.ListFeed(c.UserContext(), page.Limit, page.Page)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetRecommended handles GET /feed/recommended?limit=
func (s *Server) GetRecommended(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	posts, err := s.feedService.Recommended(c.UserContext(), page.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /feed/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.feedService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// CreatePost handles POST /feed
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}

	post, err := s.feedService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorID: currentUserID(c),
		Title:    req.Title,
		Message:  req.Message,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /feed/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}

	post, err := s.feedService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  id,
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /feed/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.feedService.DeletePost(c.UserContext(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttachMedia handles PUT /feed/:id/media. The multipart form's "files" field
// carries the batch; the upload replaces the post's existing media.
func (s *Server) AttachMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Multipart form data required"))
	}
	files := form.File["files"]

	post, err := s.feedService.AttachMedia(c.UserContext(), currentUserID(c), id, files)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(post)
}

// LikePost handles POST /feed/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.feedService.Like(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"likes": likes})
}

// UnlikePost handles POST /feed/:id/unlike
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.feedService.Unlike(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"likes": likes})
}
