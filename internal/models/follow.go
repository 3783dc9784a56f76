package models

import (
	"time"
)

// Follow records that FollowerEmail follows FollowingEmail. At most one
// active record exists per pair, enforced by the toggle operation.
type Follow struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FollowerEmail  string    `gorm:"not null;index:idx_follows_follower" json:"follower_email"`
	FollowingEmail string    `gorm:"not null;index:idx_follows_following" json:"following_email"`
	Timestamp      time.Time `json:"timestamp"`
}
