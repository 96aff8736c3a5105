package repository

import (
	"context"
	"errors"

	"aesn/internal/cache"
	"aesn/internal/models"
	"aesn/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	// List returns a page of the feed; page is zero-based, offset = page * limit.
	List(ctx context.Context, limit, page int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	// Recommended returns the most-liked posts; ties break by ascending ID so
	// the ordering is reproducible.
	Recommended(ctx context.Context, limit int) ([]*models.Post, error)
	Update(ctx context.Context, id uint, title, message string) error
	// DeleteCascade removes the post with its media rows and likes in one
	// transaction. Storage files are the caller's to clean up afterwards.
	DeleteCascade(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("insert", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewUpstreamError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Media").
			First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewUpstreamError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, page int) ([]*models.Post, error) {
	defer observability.TrackQuery("select", "posts")()

	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("Media").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(page * limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewUpstreamError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("Media").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewUpstreamError(err)
	}
	return posts, nil
}

func (r *postRepository) Recommended(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	key := cache.RecommendedKey(limit)

	err := cache.Aside(ctx, key, &posts, cache.RecommendedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Media").
			Order("likes DESC, id ASC").
			Limit(limit).
			Find(&posts).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update changes title and message and bumps updated_at.
func (r *postRepository) Update(ctx context.Context, id uint, title, message string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   title,
			"message": message,
		})
	if result.Error != nil {
		return models.NewUpstreamError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) DeleteCascade(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewUpstreamError(err)
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return models.NewUpstreamError(result.Error)
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidatePost(ctx, id)
	return nil
}
