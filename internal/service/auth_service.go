// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"aesn/internal/auth"
	"aesn/internal/models"
	"aesn/internal/repository"
	"aesn/internal/validation"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// RegisterInput is the payload for creating a new account.
type RegisterInput struct {
	Login     string
	Password  string
	FirstName string
	LastName  string
}

// NewAuthService returns a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account and issues its first access token. A taken
// login yields a conflict before any token is signed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, auth.IssuedToken, error) {
	if err := validation.ValidateLogin(in.Login); err != nil {
		return nil, auth.IssuedToken{}, models.NewInvalidInputError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, auth.IssuedToken{}, models.NewInvalidInputError(err.Error())
	}

	// Names default like the original data model: a bare login/password
	// registration still produces a presentable profile.
	firstName := in.FirstName
	lastName := in.LastName
	if firstName == "" && lastName == "" {
		firstName = "Noname"
		lastName = "User"
	}
	if err := validation.ValidateName("first name", firstName); err != nil {
		return nil, auth.IssuedToken{}, models.NewInvalidInputError(err.Error())
	}
	if err := validation.ValidateName("last name", lastName); err != nil {
		return nil, auth.IssuedToken{}, models.NewInvalidInputError(err.Error())
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, auth.IssuedToken{}, models.NewUpstreamError(err)
	}

	user := &models.User{
		Login:     in.Login,
		Hash:      hash,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, auth.IssuedToken{}, err
	}

	token, err := s.tokens.Issue(user.Login)
	if err != nil {
		return nil, auth.IssuedToken{}, models.NewUpstreamError(err)
	}
	return user, token, nil
}

// Login verifies credentials and issues an access token. Unknown login and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (auth.IssuedToken, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return auth.IssuedToken{}, err
	}
	if user == nil || !auth.CheckPassword(password, user.Hash) {
		return auth.IssuedToken{}, models.NewUnauthenticatedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.Login)
	if err != nil {
		return auth.IssuedToken{}, models.NewUpstreamError(err)
	}
	return token, nil
}
