// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the local store. Email is the natural
// primary key; there is exactly one record per email.
type User struct {
	Email          string    `gorm:"primaryKey" json:"email"`
	FirstName      string    `gorm:"index:idx_users_name" json:"first_name"`
	LastName       string    `gorm:"index:idx_users_name" json:"last_name"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
