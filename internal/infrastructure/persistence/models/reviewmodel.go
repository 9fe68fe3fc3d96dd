package models

import (
	"time"

	"revu/internal/shared/constants"
)

// ReviewModel represents the database persistence model for reviews
type ReviewModel struct {
	ID       uint   `gorm:"primarykey"`
	TicketID uint   `gorm:"not null;index:idx_reviews_ticket"`
	Rating   int    `gorm:"not null"`
	Headline string `gorm:"not null;size:128"`
	Body     string `gorm:"size:8192"`
	AuthorID uint   `gorm:"not null;index:idx_reviews_author"`
	// CreatedAt doubles as the feed timestamp and moves on edit.
	CreatedAt time.Time `gorm:"index:idx_reviews_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ReviewModel) TableName() string {
	return constants.TableReviews
}
