package repository_test

import (
	"testing"

	"aesn/internal/models"
	"aesn/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicateLogin(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	createTestUser(t, db, "taken_login")

	err := repo.Create(testCtx(), &models.User{
		Login:     "taken_login",
		Hash:      "hash",
		FirstName: "Other",
		LastName:  "Person",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_GetByLoginAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	user, err := repo.GetByLogin(testCtx(), "nobody_here")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.GetByID(testCtx(), 12345)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	user := createTestUser(t, db, "renameable")

	user.FirstName = "Renamed"
	require.NoError(t, repo.Update(testCtx(), user))

	got, err := repo.GetByID(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FirstName)
}

func TestUserRepository_DeleteCascade(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	owner := createTestUser(t, db, "departing")
	other := createTestUser(t, db, "staying")

	ownPost := createTestPost(t, db, owner.ID, "owned")
	otherPost := createTestPost(t, db, other.ID, "not mine")

	require.NoError(t, db.Create(&models.Media{
		AuthorID: owner.ID,
		PostID:   ownPost.ID,
		URI:      "cascade/1.png",
	}).Error)

	// The departing user liked someone else's post; the other user liked
	// the departing user's post.
	_, err := likeRepo.Like(testCtx(), owner.ID, otherPost.ID)
	require.NoError(t, err)
	_, err = likeRepo.Like(testCtx(), other.ID, ownPost.ID)
	require.NoError(t, err)

	postIDs, err := repo.DeleteCascade(testCtx(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{ownPost.ID}, postIDs)

	var users, posts, media, likes int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", owner.ID).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("author_id = ?", owner.ID).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Media{}).Where("post_id = ?", ownPost.ID).Count(&media).Error)
	require.NoError(t, db.Model(&models.Like{}).Where("user_id = ? OR post_id = ?", owner.ID, ownPost.ID).Count(&likes).Error)
	assert.Zero(t, users)
	assert.Zero(t, posts)
	assert.Zero(t, media)
	assert.Zero(t, likes)

	// The other user's post survives.
	var survivor models.Post
	require.NoError(t, db.First(&survivor, otherPost.ID).Error)
}

func TestUserRepository_DeleteCascadeMissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)

	_, err := repo.DeleteCascade(testCtx(), 777)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
