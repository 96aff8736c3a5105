package models

import (
	"time"
)

// Media is a file attached to a post. The URI is the storage location on the
// configured media root and is unique across all posts.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	URI       string    `gorm:"uniqueIndex;not null" json:"uri"`
	Extension string    `gorm:"size:10" json:"extension"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}
