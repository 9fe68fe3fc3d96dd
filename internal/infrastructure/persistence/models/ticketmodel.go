package models

import (
	"time"

	"revu/internal/shared/constants"
)

// TicketModel represents the database persistence model for tickets
type TicketModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:128"`
	Description string `gorm:"size:2048"`
	AuthorID    uint   `gorm:"not null;index:idx_tickets_author"`
	ImagePath   string `gorm:"size:500"`
	// CreatedAt doubles as the feed timestamp and moves on edit.
	CreatedAt time.Time `gorm:"index:idx_tickets_created"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}
