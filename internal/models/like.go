package models

import (
	"time"
)

// Like marks that a user liked a post. At most one active record exists per
// (PostID, UserEmail) pair; the toggle operation enforces this, not a store
// constraint.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index:idx_likes_post" json:"post_id"`
	UserEmail string    `gorm:"not null;index:idx_likes_user" json:"user_email"`
	Timestamp time.Time `json:"timestamp"`
}
