package server

import (
	"aesn/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicUser handles GET /users/:id. The response carries the public
// subset of the profile only.
func (s *Server) GetPublicUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetPublicUser(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(profile)
}
