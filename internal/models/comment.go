package models

import (
	"time"
)

// Comment represents a comment on a post. Deleting a post does not delete
// its comments; callers that want referential cleanup do it themselves.
type Comment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PostID      uint      `gorm:"not null;index:idx_comments_post" json:"post_id"`
	AuthorEmail string    `gorm:"not null;index:idx_comments_author" json:"author_email"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Timestamp   time.Time `json:"timestamp"`
}
