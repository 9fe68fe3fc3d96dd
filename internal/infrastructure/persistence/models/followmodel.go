package models

import (
	"time"

	"revu/internal/shared/constants"
)

// FollowModel represents the database persistence model for follow edges.
// The composite unique index enforces one edge per (follower, followed)
// pair at the storage level.
type FollowModel struct {
	ID         uint `gorm:"primarykey"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follow_pair;index:idx_follows_follower"`
	FollowedID uint `gorm:"not null;uniqueIndex:idx_follow_pair;index:idx_follows_followed"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (FollowModel) TableName() string {
	return constants.TableFollows
}
