package models

import (
	"time"
)

// PendingRequest is a mutating network call that failed at the transport
// layer and waits for replay. The envelope holds exactly what is needed to
// reconstruct and re-issue the original request. IdempotencyKey is recorded
// so a replay target could dedupe; the queue itself guarantees only
// at-least-once delivery.
type PendingRequest struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Method         string    `gorm:"not null" json:"method"`
	URL            string    `gorm:"not null" json:"url"`
	Headers        string    `gorm:"type:text" json:"headers"`
	Body           []byte    `gorm:"type:blob" json:"body"`
	IdempotencyKey string    `gorm:"not null" json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}
