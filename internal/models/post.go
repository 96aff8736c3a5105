// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a feed entry.
//
// MediaCount and Likes are derived counters: they are recomputed from the
// media and likes tables after every mutating operation rather than
// incremented, so a lost update heals on the next recompute.
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Title      string    `gorm:"size:300;not null" json:"title"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	MediaCount int       `gorm:"not null;default:0" json:"media_count"`
	Likes      int       `gorm:"not null;default:0" json:"likes"`
	Media      []Media   `gorm:"foreignKey:PostID" json:"media"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
