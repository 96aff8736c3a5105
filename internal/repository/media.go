package repository

import (
	"context"

	"aesn/internal/cache"
	"aesn/internal/models"
	"aesn/internal/observability"

	"gorm.io/gorm"
)

// MediaRepository defines persistence operations for post media rows. File
// contents live in the media store; rows reference them by URI.
type MediaRepository interface {
	// ReplaceForPost swaps the post's media rows for the given batch and
	// recomputes the post's media_count, all in one transaction. The count is
	// recomputed from the rows actually inserted, not assumed from the batch
	// size, so a partially failed upload still leaves the counter accurate.
	ReplaceForPost(ctx context.Context, postID uint, media []models.Media) error
	ListByPost(ctx context.Context, postID uint) ([]models.Media, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository returns a new MediaRepository implementation.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) ReplaceForPost(ctx context.Context, postID uint, media []models.Media) error {
	defer observability.TrackQuery("insert", "media")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Media{}).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		if len(media) > 0 {
			if err := tx.Create(&media).Error; err != nil {
				return models.NewUpstreamError(err)
			}
		}
		return recomputeMediaCount(tx, postID)
	})
	if err != nil {
		return err
	}

	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *mediaRepository) ListByPost(ctx context.Context, postID uint) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("uri ASC").
		Find(&media).Error; err != nil {
		return nil, models.NewUpstreamError(err)
	}
	return media, nil
}

func (r *mediaRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewUpstreamError(err)
	}
	return count, nil
}

// recomputeMediaCount sets posts.media_count to the actual row count. Full
// recompute rather than a delta, so concurrent batches cannot drift the
// counter.
func recomputeMediaCount(tx *gorm.DB, postID uint) error {
	var count int64
	if err := tx.Model(&models.Media{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return models.NewUpstreamError(err)
	}
	// UpdateColumn: counter maintenance must not bump the post's updated_at.
	if err := tx.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("media_count", count).Error; err != nil {
		return models.NewUpstreamError(err)
	}
	return nil
}
