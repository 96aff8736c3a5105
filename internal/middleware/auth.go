package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"aesn/internal/auth"
	"aesn/internal/models"
	"aesn/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// CurrentUserKey is the Fiber local under which AuthRequired stores the
// resolved *models.User.
const CurrentUserKey = "currentUser"

// AuthRequired returns a middleware that enforces authentication for
// protected routes. The resolved user record is stored in Locals; clients
// always receive a uniform 401, while the internal failure kind (bad token
// vs. vanished account) is logged and counted separately.
func AuthRequired(resolver *auth.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Authorization header required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid authorization header format"))
		}

		user, err := resolver.Resolve(c.UserContext(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidToken):
				observability.AuthFailures.WithLabelValues("invalid_token").Inc()
			case errors.Is(err, auth.ErrUserNotFound):
				observability.AuthFailures.WithLabelValues("user_not_found").Inc()
				Logger.WarnContext(c.UserContext(), "token subject no longer exists",
					slog.String("path", c.Path()))
			default:
				return models.RespondWithError(c, err)
			}
			return models.RespondWithError(c,
				models.NewUnauthenticatedError("Invalid or expired token"))
		}

		c.Locals("userID", user.ID)
		c.Locals(CurrentUserKey, user)

		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil on an
// unprotected route.
func CurrentUser(c *fiber.Ctx) *models.User {
	if u, ok := c.Locals(CurrentUserKey).(*models.User); ok {
		return u
	}
	return nil
}
