package review

import "context"

// Repository defines the interface for review data operations
type Repository interface {
	// Create creates a new review
	Create(ctx context.Context, r *Review) error

	// Update updates an existing review
	Update(ctx context.Context, r *Review) error

	// Delete removes a review by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a review by ID
	GetByID(ctx context.Context, id uint) (*Review, error)

	// ListByTicketID retrieves all reviews targeting a ticket
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Review, error)

	// ListByAuthorIDs retrieves all reviews written by any of the given users
	ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Review, error)

	// ListByTicketAuthor retrieves all reviews targeting tickets owned by
	// the given user, regardless of who wrote them
	ListByTicketAuthor(ctx context.Context, ticketAuthorID uint) ([]*Review, error)
}
