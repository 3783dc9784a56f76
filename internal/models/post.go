// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a piece of authored content.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorEmail string    `gorm:"not null;index:idx_posts_author" json:"author_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Timestamp   time.Time `gorm:"index:idx_posts_timestamp" json:"timestamp"`
	LikeCount   int       `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
