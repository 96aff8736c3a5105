package models

import (
	"time"
)

// Like marks that a user liked a post. The composite primary key enforces at
// most one like per (user, post) pair.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
