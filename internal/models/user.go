// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Login     string    `gorm:"uniqueIndex;size:20;not null" json:"login"`
	Hash      string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"size:35" json:"first_name"`
	LastName  string    `gorm:"size:35" json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	Posts     []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// PublicProfile is the subset of User exposed on the public users endpoint.
// It carries no login and no credential material.
type PublicProfile struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the externally visible subset of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
