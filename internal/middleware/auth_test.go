package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aesn/internal/auth"
	"aesn/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	user *models.User
}

func (s *userRepoStub) GetByID(context.Context, uint) (*models.User, error) { return nil, nil }
func (s *userRepoStub) GetByLogin(context.Context, string) (*models.User, error) {
	return s.user, nil
}
func (s *userRepoStub) Create(context.Context, *models.User) error          { return nil }
func (s *userRepoStub) Update(context.Context, *models.User) error          { return nil }
func (s *userRepoStub) DeleteCascade(context.Context, uint) ([]uint, error) { return nil, nil }
func (s *userRepoStub) List(context.Context, int, int) ([]models.User, error) {
	return nil, nil
}

func newAuthTestApp(t *testing.T, repo *userRepoStub) (*fiber.App, *auth.TokenService) {
	t.Helper()

	tokens := auth.NewTokenService("middleware-test-secret", time.Hour)
	resolver := auth.NewIdentityResolver(tokens, repo)

	app := fiber.New()
	app.Get("/protected", AuthRequired(resolver), func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		return c.JSON(fiber.Map{"user_id": user.ID})
	})
	return app, tokens
}

func TestAuthRequired_ValidToken(t *testing.T) {
	app, tokens := newAuthTestApp(t, &userRepoStub{
		user: &models.User{ID: 11, Login: "present"},
	})

	issued, err := tokens.Issue("present")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired_MissingAndMalformedHeaders(t *testing.T) {
	app, _ := newAuthTestApp(t, &userRepoStub{})

	for _, header := range []string{"", "Bearer", "Basic abc123", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthRequired_DeletedAccountLooksLikeBadToken(t *testing.T) {
	// repo returns no user: the account behind the token is gone.
	app, tokens := newAuthTestApp(t, &userRepoStub{user: nil})

	issued, err := tokens.Issue("ghost")
	require.NoError(t, err)

	goodFormatReq := httptest.NewRequest(http.MethodGet, "/protected", nil)
	goodFormatReq.Header.Set("Authorization", "Bearer "+issued.Token)
	deletedResp, err := app.Test(goodFormatReq)
	require.NoError(t, err)

	garbageReq := httptest.NewRequest(http.MethodGet, "/protected", nil)
	garbageReq.Header.Set("Authorization", "Bearer garbage")
	garbageResp, err := app.Test(garbageReq)
	require.NoError(t, err)

	// Both kinds surface as the same uniform 401.
	assert.Equal(t, http.StatusUnauthorized, deletedResp.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, garbageResp.StatusCode)
}
