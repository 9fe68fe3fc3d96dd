package follow

import "context"

// Repository defines the interface for follow edge data operations
type Repository interface {
	// Create inserts a new follow edge. Inserting a duplicate
	// (follower, followed) pair returns a conflict error rather than
	// silently succeeding.
	Create(ctx context.Context, e *Edge) error

	// Delete removes a follow edge by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a follow edge by ID
	GetByID(ctx context.Context, id uint) (*Edge, error)

	// ListByFollower retrieves the edges where userID is the follower
	ListByFollower(ctx context.Context, userID uint) ([]*Edge, error)

	// ListByFollowed retrieves the edges where userID is the followed user
	ListByFollowed(ctx context.Context, userID uint) ([]*Edge, error)
}
