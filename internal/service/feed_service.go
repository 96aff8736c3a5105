package service

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"aesn/internal/models"
	"aesn/internal/repository"
	"aesn/internal/storage"
)

const (
	maxTitleLen   = 300
	maxMessageLen = 50000
	maxMediaBatch = 10
)

// FeedService handles posts, likes, and media attachment.
type FeedService struct {
	posts repository.PostRepository
	likes repository.LikeRepository
	media repository.MediaRepository
	store *storage.MediaStore
}

// CreatePostInput is the payload for a new post.
type CreatePostInput struct {
	AuthorID uint
	Title    string
	Message  string
}

// UpdatePostInput is the payload for editing a post's title and message.
type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Message string
}

// NewFeedService returns a new FeedService.
func NewFeedService(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	media repository.MediaRepository,
	store *storage.MediaStore,
) *FeedService {
	return &FeedService{posts: posts, likes: likes, media: media, store: store}
}

// allowedMediaExtensions are the upload types the feed accepts.
var allowedMediaExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

func (s *FeedService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Title == "" {
		return nil, models.NewInvalidInputError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewInvalidInputError("Title too long (max 300 characters)")
	}
	if in.Message == "" {
		return nil, models.NewInvalidInputError("Message is required")
	}
	if len(in.Message) > maxMessageLen {
		return nil, models.NewInvalidInputError("Message too long (max 50000 characters)")
	}

	post := &models.Post{
		AuthorID: in.AuthorID,
		Title:    in.Title,
		Message:  in.Message,
		Media:    []models.Media{},
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *FeedService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListFeed returns one page of the feed. Page is zero-based.
func (s *FeedService) ListFeed(ctx context.Context, limit, page int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if page < 0 {
		page = 0
	}
	return s.posts.List(ctx, limit, page)
}

// Recommended returns the most-liked posts.
func (s *FeedService) Recommended(ctx context.Context, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.posts.Recommended(ctx, limit)
}

// UpdatePost edits title and message. Only the post's author may do this.
func (s *FeedService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if _, err := s.assertOwner(ctx, in.UserID, in.PostID); err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, models.NewInvalidInputError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewInvalidInputError("Title too long (max 300 characters)")
	}
	if in.Message == "" {
		return nil, models.NewInvalidInputError("Message is required")
	}
	if len(in.Message) > maxMessageLen {
		return nil, models.NewInvalidInputError("Message too long (max 50000 characters)")
	}

	if err := s.posts.Update(ctx, in.PostID, in.Title, in.Message); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, in.PostID)
}

// DeletePost removes a post with its media and likes. Owner only.
func (s *FeedService) DeletePost(ctx context.Context, userID, postID uint) error {
	if _, err := s.assertOwner(ctx, userID, postID); err != nil {
		return err
	}
	if err := s.posts.DeleteCascade(ctx, postID); err != nil {
		return err
	}
	return s.store.RemovePostDir(postID)
}

// AttachMedia replaces the post's media with the uploaded batch. Owner only.
// The batch size is checked before any file or row is written; the count is
// recomputed from what was actually persisted.
func (s *FeedService) AttachMedia(ctx context.Context, userID, postID uint, files []*multipart.FileHeader) (*models.Post, error) {
	if _, err := s.assertOwner(ctx, userID, postID); err != nil {
		return nil, err
	}
	if len(files) == 0 || len(files) > maxMediaBatch {
		return nil, models.NewInvalidInputError("Between 1 and 10 media files are required")
	}

	exts := make([]string, len(files))
	for i, fh := range files {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
		if !allowedMediaExtensions[ext] {
			return nil, models.NewInvalidInputError("Unsupported media type: " + fh.Filename)
		}
		exts[i] = ext
	}

	if err := s.store.ResetPostDir(postID); err != nil {
		return nil, models.NewUpstreamError(err)
	}

	rows := make([]models.Media, 0, len(files))
	for i, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, models.NewUpstreamError(err)
		}
		uri, err := s.store.Save(postID, i+1, exts[i], src)
		src.Close()
		if err != nil {
			// Rows reflect only what is on disk; the recompute below keeps
			// media_count accurate for the partial batch.
			break
		}
		rows = append(rows, models.Media{
			AuthorID:  userID,
			PostID:    postID,
			URI:       uri,
			Extension: exts[i],
		})
	}
	if len(rows) == 0 {
		return nil, models.NewUpstreamError(errors.New("no media files could be stored"))
	}

	if err := s.media.ReplaceForPost(ctx, postID, rows); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, postID)
}

// Like records userID's like on postID, idempotently, and returns the post's
// like count afterwards.
func (s *FeedService) Like(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.likes.Like(ctx, userID, postID)
}

// Unlike removes userID's like on postID if present and returns the post's
// like count afterwards. Unliking a never-liked post is a no-op.
func (s *FeedService) Unlike(ctx context.Context, userID, postID uint) (int64, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.likes.Unlike(ctx, userID, postID)
}

// assertOwner loads the post and confirms it belongs to userID. A missing
// post is NotFound; someone else's post is Forbidden.
func (s *FeedService) assertOwner(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, models.NewForbiddenError("You have no access to modify this post")
	}
	return post, nil
}
