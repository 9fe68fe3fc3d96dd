package ticket

import "context"

// Repository defines the interface for ticket data operations
type Repository interface {
	// Create creates a new ticket
	Create(ctx context.Context, t *Ticket) error

	// Update updates an existing ticket
	Update(ctx context.Context, t *Ticket) error

	// Delete removes a ticket together with its dependent reviews.
	// Children are deleted before the parent in one transaction.
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a ticket by ID
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// ListByAuthorIDs retrieves all tickets owned by any of the given users
	ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Ticket, error)
}
