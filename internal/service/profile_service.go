package service

import (
	"context"
	"log/slog"

	"aesn/internal/auth"
	"aesn/internal/middleware"
	"aesn/internal/models"
	"aesn/internal/repository"
	"aesn/internal/storage"
	"aesn/internal/validation"
)

// ProfileService handles profile reads, partial updates, and account deletion.
type ProfileService struct {
	users repository.UserRepository
	store *storage.MediaStore
}

// UpdateProfileInput carries the fields a user may change. Empty fields are
// left untouched; OldPassword is always required.
type UpdateProfileInput struct {
	UserID      uint
	OldPassword string
	Login       string
	Password    string
	FirstName   string
	LastName    string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(users repository.UserRepository, store *storage.MediaStore) *ProfileService {
	return &ProfileService{users: users, store: store}
}

// GetProfile loads the user's own profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update after re-verifying the current
// password. Only supplied fields change; unsupplied fields keep their values.
func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(in.OldPassword, user.Hash) {
		return nil, models.NewUnauthenticatedError("Invalid password")
	}

	if in.Login != "" {
		if err := validation.ValidateLogin(in.Login); err != nil {
			return nil, models.NewInvalidInputError(err.Error())
		}
		user.Login = in.Login
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewInvalidInputError(err.Error())
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, models.NewUpstreamError(err)
		}
		user.Hash = hash
	}
	if in.FirstName != "" {
		if err := validation.ValidateName("first name", in.FirstName); err != nil {
			return nil, models.NewInvalidInputError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("last name", in.LastName); err != nil {
			return nil, models.NewInvalidInputError(err.Error())
		}
		user.LastName = in.LastName
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own. The row cascade is
// one transaction; media directories are cleaned from disk only after it
// commits, so a rollback never orphans the database against storage.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint, password string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(password, user.Hash) {
		return models.NewUnauthenticatedError("Invalid password")
	}

	postIDs, err := s.users.DeleteCascade(ctx, userID)
	if err != nil {
		return err
	}

	for _, postID := range postIDs {
		if err := s.store.RemovePostDir(postID); err != nil {
			// Rows are already gone; leftover files are logged, not fatal.
			middleware.Logger.WarnContext(ctx, "failed to remove media directory",
				slog.Uint64("post_id", uint64(postID)),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// GetPublicUser loads the public subset of a user's profile.
func (s *ProfileService) GetPublicUser(ctx context.Context, userID uint) (models.PublicProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.PublicProfile{}, err
	}
	return user.Public(), nil
}
