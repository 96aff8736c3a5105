package server

import (
	"aesn/internal/models"
	"aesn/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	user, err := s.profileService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /profile. Every update re-verifies the current
// password; supplied fields change, omitted fields keep their values.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"old_password"`
		Login       string `json:"login"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}
	if req.OldPassword == "" {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Current password is required"))
	}

	user, err := s.profileService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:      currentUserID(c),
		OldPassword: req.OldPassword,
		Login:       req.Login,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// DeleteAccount handles DELETE /profile. The password is re-verified before
// the account and everything it owns is removed.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Invalid request body"))
	}
	if req.Password == "" {
		return models.RespondWithError(c,
			models.NewInvalidInputError("Password is required"))
	}

	if err := s.profileService.DeleteAccount(c.UserContext(), currentUserID(c), req.Password); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
