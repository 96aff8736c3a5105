package service

import (
	"context"
	"testing"

	"aesn/internal/models"
	"aesn/internal/repository"
	"aesn/internal/storage"

	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByLoginFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteCascadeFn func(context.Context, uint) ([]uint, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.getByLoginFn(ctx, login)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) DeleteCascade(ctx context.Context, id uint) ([]uint, error) {
	return s.deleteCascadeFn(ctx, id)
}
func (s *userRepoStub) List(context.Context, int, int) ([]models.User, error) {
	return nil, nil
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	listFn          func(context.Context, int, int) ([]*models.Post, error)
	recommendedFn   func(context.Context, int) ([]*models.Post, error)
	updateFn        func(context.Context, uint, string, string) error
	deleteCascadeFn func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, page int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, page)
}
func (s *postRepoStub) ListByAuthor(context.Context, uint) ([]*models.Post, error) {
	return nil, nil
}
func (s *postRepoStub) Recommended(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.recommendedFn(ctx, limit)
}
func (s *postRepoStub) Update(ctx context.Context, id uint, title, message string) error {
	return s.updateFn(ctx, id, title, message)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	return s.deleteCascadeFn(ctx, id)
}

type likeRepoStub struct {
	likeFn   func(context.Context, uint, uint) (int64, error)
	unlikeFn func(context.Context, uint, uint) (int64, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, postID uint) (int64, error) {
	return s.likeFn(ctx, userID, postID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, postID uint) (int64, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *likeRepoStub) IsLiked(context.Context, uint, uint) (bool, error) {
	return false, nil
}
func (s *likeRepoStub) DeleteAllForUser(context.Context, uint) error {
	return nil
}

type mediaRepoStub struct {
	replaceForPostFn func(context.Context, uint, []models.Media) error
}

func (s *mediaRepoStub) ReplaceForPost(ctx context.Context, postID uint, media []models.Media) error {
	return s.replaceForPostFn(ctx, postID, media)
}
func (s *mediaRepoStub) ListByPost(context.Context, uint) ([]models.Media, error) {
	return nil, nil
}
func (s *mediaRepoStub) CountByPost(context.Context, uint) (int64, error) {
	return 0, nil
}

var (
	_ repository.UserRepository  = (*userRepoStub)(nil)
	_ repository.PostRepository  = (*postRepoStub)(nil)
	_ repository.LikeRepository  = (*likeRepoStub)(nil)
	_ repository.MediaRepository = (*mediaRepoStub)(nil)
)

func newTestStore(t *testing.T) *storage.MediaStore {
	t.Helper()

	store, err := storage.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	return store
}
