package repository_test

import (
	"testing"

	"aesn/internal/models"
	"aesn/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaRepository_ReplaceForPost(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMediaRepository(db)
	author := createTestUser(t, db, "uploader")
	post := createTestPost(t, db, author.ID, "with media")

	first := []models.Media{
		{AuthorID: author.ID, PostID: post.ID, URI: "1/1.png", Extension: "png"},
		{AuthorID: author.ID, PostID: post.ID, URI: "1/2.jpg", Extension: "jpg"},
	}
	require.NoError(t, repo.ReplaceForPost(testCtx(), post.ID, first))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, 2, stored.MediaCount)

	// A second batch replaces, never appends.
	second := []models.Media{
		{AuthorID: author.ID, PostID: post.ID, URI: "1/1.jpeg", Extension: "jpeg"},
	}
	require.NoError(t, repo.ReplaceForPost(testCtx(), post.ID, second))

	rows, err := repo.ListByPost(testCtx(), post.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1/1.jpeg", rows[0].URI)

	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, 1, stored.MediaCount)
}

func TestMediaRepository_ReplaceWithEmptyBatchClears(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMediaRepository(db)
	author := createTestUser(t, db, "clearer")
	post := createTestPost(t, db, author.ID, "cleared")

	require.NoError(t, repo.ReplaceForPost(testCtx(), post.ID, []models.Media{
		{AuthorID: author.ID, PostID: post.ID, URI: "2/1.png", Extension: "png"},
	}))
	require.NoError(t, repo.ReplaceForPost(testCtx(), post.ID, nil))

	count, err := repo.CountByPost(testCtx(), post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Zero(t, stored.MediaCount)
}

func TestMediaRepository_CountMatchesRows(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewMediaRepository(db)
	author := createTestUser(t, db, "counter")
	post := createTestPost(t, db, author.ID, "counted")

	batch := []models.Media{
		{AuthorID: author.ID, PostID: post.ID, URI: "3/1.png", Extension: "png"},
		{AuthorID: author.ID, PostID: post.ID, URI: "3/2.png", Extension: "png"},
		{AuthorID: author.ID, PostID: post.ID, URI: "3/3.png", Extension: "png"},
	}
	require.NoError(t, repo.ReplaceForPost(testCtx(), post.ID, batch))

	count, err := repo.CountByPost(testCtx(), post.ID)
	require.NoError(t, err)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, count, int64(stored.MediaCount))
}
