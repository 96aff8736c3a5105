// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"aesn/internal/auth"
	"aesn/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures the seeder.
type Options struct {
	NumUsers int
	NumPosts int
	Clean    bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll removes every seeded table's rows, children first.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Like{}, &models.Media{}, &models.Post{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users, posts, and a random like mesh, then recomputes the derived
// post counters from the rows actually inserted.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers <= 0 {
		return fmt.Errorf("at least one user is required, got %d", opts.NumUsers)
	}
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	// One hash shared by all demo accounts keeps seeding fast; bcrypt per
	// user dominates the runtime otherwise.
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Login:     seedLogin(i),
			Hash:      hash,
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.rnd.Intn(len(users))]
		post := &models.Post{
			AuthorID:  author.ID,
			Title:     gofakeit.Sentence(5),
			Message:   gofakeit.Paragraph(1, 3, 8, "\n"),
			CreatedAt: time.Now().Add(-time.Duration(s.rnd.Intn(90*24)) * time.Hour),
		}
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}

	// Each user likes a random slice of the feed. OnConflict keeps duplicate
	// picks harmless.
	for _, user := range users {
		for i := 0; i < s.rnd.Intn(len(posts)/2+1); i++ {
			post := posts[s.rnd.Intn(len(posts))]
			like := models.Like{UserID: user.ID, PostID: post.ID}
			if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("create like: %w", err)
			}
		}
	}

	if err := s.recomputeCounters(); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

// recomputeCounters rederives posts.likes and posts.media_count from the row
// sets, the same way the live write paths do.
func (s *Seeder) recomputeCounters() error {
	var posts []models.Post
	if err := s.db.Select("id").Find(&posts).Error; err != nil {
		return err
	}
	for _, post := range posts {
		var likes, mediaCount int64
		if err := s.db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes).Error; err != nil {
			return err
		}
		if err := s.db.Model(&models.Media{}).Where("post_id = ?", post.ID).Count(&mediaCount).Error; err != nil {
			return err
		}
		if err := s.db.Model(&models.Post{}).Where("id = ?", post.ID).
			UpdateColumns(map[string]interface{}{
				"likes":       likes,
				"media_count": mediaCount,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedLogin builds a unique login that passes the account validation rules.
func seedLogin(i int) string {
	base := strings.ToLower(gofakeit.Username())
	cleaned := make([]rune, 0, len(base))
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '.' || r == '-' {
			cleaned = append(cleaned, r)
		}
	}
	login := string(cleaned)
	if len(login) > 14 {
		login = login[:14]
	}
	return fmt.Sprintf("%s_%04d", login, i)
}
