package review

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

const (
	maxHeadlineLength = 128
	maxBodyLength     = 8192

	// MinRating and MaxRating bound the inclusive rating scale.
	MinRating = 0
	MaxRating = 5
)

// Review is a user-authored critique targeting exactly one ticket.
type Review struct {
	id        uint
	ticketID  uint
	rating    int
	headline  string
	body      string
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

// NewReview creates a new review of the given ticket by authorID.
func NewReview(ticketID, authorID uint, rating int, headline, body string) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateDetails(rating, headline, body); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Review{
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructReview reconstructs a review from persistence.
func ReconstructReview(id, ticketID uint, rating int, headline, body string, authorID uint, createdAt, updatedAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func validateDetails(rating int, headline, body string) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(headline) == 0 {
		return fmt.Errorf("headline is required")
	}
	if len(headline) > maxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", maxHeadlineLength)
	}
	if len(body) > maxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	return nil
}

// UpdateDetails replaces rating, headline and body. The creation timestamp
// is refreshed: an edited review resurfaces at the top of feeds.
func (r *Review) UpdateDetails(rating int, headline, body string) error {
	if err := validateDetails(rating, headline, body); err != nil {
		return err
	}
	now := biztime.NowUTC()
	r.rating = rating
	r.headline = headline
	r.body = body
	r.createdAt = now
	r.updatedAt = now
	return nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) AuthorID() uint {
	return r.authorID
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}
