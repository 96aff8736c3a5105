package repository

import (
	"context"

	"aesn/internal/cache"
	"aesn/internal/models"
	"aesn/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence operations for likes. Like and Unlike
// are idempotent toggles: repeating either leaves the row set and the derived
// counter unchanged.
type LikeRepository interface {
	// Like records the (user, post) like if absent and recomputes posts.likes.
	// Returns the post's like count after the operation.
	Like(ctx context.Context, userID, postID uint) (int64, error)
	// Unlike is the mirror of Like; unliking a never-liked post is a no-op.
	Unlike(ctx context.Context, userID, postID uint) (int64, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	// DeleteAllForUser bulk-removes a user's likes without per-row recompute;
	// affected posts may show transiently stale counts until their next
	// recompute.
	DeleteAllForUser(ctx context.Context, userID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(ctx context.Context, userID, postID uint) (int64, error) {
	defer observability.TrackQuery("insert", "likes")()

	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Insert-if-absent on the composite key keeps the toggle idempotent
		// under concurrent requests without a prior existence read.
		like := models.Like{UserID: userID, PostID: postID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		var err error
		count, err = recomputeLikes(tx, postID)
		return err
	})
	if err != nil {
		return 0, err
	}

	cache.InvalidatePost(ctx, postID)
	return count, nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID, postID uint) (int64, error) {
	defer observability.TrackQuery("delete", "likes")()

	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{}).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		var err error
		count, err = recomputeLikes(tx, postID)
		return err
	})
	if err != nil {
		return 0, err
	}

	cache.InvalidatePost(ctx, postID)
	return count, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewUpstreamError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	return deleteAllLikesForUser(r.db.WithContext(ctx), userID)
}

// deleteAllLikesForUser removes every like row the user created. Shared with
// the account-deletion cascade so both paths issue the same statement.
func deleteAllLikesForUser(tx *gorm.DB, userID uint) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
		return models.NewUpstreamError(err)
	}
	return nil
}

// recomputeLikes sets posts.likes to the actual like row count and returns
// it. Recompute-not-increment: concurrent toggles racing on the same post
// converge because each one re-derives the count from the row set.
func recomputeLikes(tx *gorm.DB, postID uint) (int64, error) {
	var count int64
	if err := tx.Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewUpstreamError(err)
	}
	// UpdateColumn: counter maintenance must not bump the post's updated_at.
	if err := tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("likes", count).Error; err != nil {
		return 0, models.NewUpstreamError(err)
	}
	return count, nil
}
