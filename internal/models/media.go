package models

import (
	"time"
)

// Media represents a stored binary asset. Blob is opaque to the store; the
// declared MIME type and size are whatever the caller supplied.
type Media struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OwnerEmail string    `gorm:"not null;index:idx_media_owner" json:"owner_email"`
	Blob       []byte    `gorm:"type:blob" json:"-"`
	MimeType   string    `gorm:"index:idx_media_type" json:"mime_type"`
	Size       int64     `json:"size"`
	Timestamp  time.Time `json:"timestamp"`
}
