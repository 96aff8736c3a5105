package server

import (
	"aesn/internal/models"
	"aesn/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /registration
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Login     string `json:"login"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}

	_, token, err := s.authService.Register(ctx, service.RegisterInput{
		Login:     req.Login,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(token)
}

// Login handles POST /auth
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}
	if req.Login == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Login and password are required"))
	}

	token, err := s.authService.Login(ctx, req.Login, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(token)
}
