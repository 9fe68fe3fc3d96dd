package ticket

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

const (
	maxTitleLength       = 128
	maxDescriptionLength = 2048
)

// Ticket is a user-authored request inviting reviews, optionally carrying a
// normalized cover image.
type Ticket struct {
	id          uint
	title       string
	description string
	authorID    uint
	imagePath   string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a new ticket owned by authorID.
func NewTicket(title, description string, authorID uint) (*Ticket, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateDetails(title, description); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		authorID:    authorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence.
func ReconstructTicket(id uint, title, description string, authorID uint, imagePath string, createdAt, updatedAt time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		authorID:    authorID,
		imagePath:   imagePath,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateDetails(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}

// UpdateDetails replaces title and description. The creation timestamp is
// refreshed: an edited ticket resurfaces at the top of feeds, and created_at
// doubles as the feed timestamp.
func (t *Ticket) UpdateDetails(title, description string) error {
	if err := validateDetails(title, description); err != nil {
		return err
	}
	now := biztime.NowUTC()
	t.title = title
	t.description = description
	t.createdAt = now
	t.updatedAt = now
	return nil
}

// AttachImage points the ticket at a stored image blob.
func (t *Ticket) AttachImage(path string) {
	t.imagePath = path
	t.updatedAt = biztime.NowUTC()
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) AuthorID() uint {
	return t.authorID
}

func (t *Ticket) ImagePath() string {
	return t.imagePath
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
