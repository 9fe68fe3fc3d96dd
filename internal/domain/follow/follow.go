package follow

import (
	"fmt"
	"time"

	"revu/internal/shared/biztime"
)

// Edge is a directed subscription: follower receives followed's posts in
// their activity feed. (follower, followed) pairs are unique.
//
// Self-follows are not rejected here; the observed product behavior leaves
// them possible and the storage uniqueness constraint still applies.
type Edge struct {
	id         uint
	followerID uint
	followedID uint
	createdAt  time.Time
}

// NewEdge creates a follow edge from followerID to followedID.
func NewEdge(followerID, followedID uint) (*Edge, error) {
	if followerID == 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	if followedID == 0 {
		return nil, fmt.Errorf("followed user ID is required")
	}

	return &Edge{
		followerID: followerID,
		followedID: followedID,
		createdAt:  biztime.NowUTC(),
	}, nil
}

// ReconstructEdge reconstructs a follow edge from persistence.
func ReconstructEdge(id, followerID, followedID uint, createdAt time.Time) (*Edge, error) {
	if id == 0 {
		return nil, fmt.Errorf("edge ID cannot be zero")
	}
	if followerID == 0 || followedID == 0 {
		return nil, fmt.Errorf("follower and followed user IDs are required")
	}

	return &Edge{
		id:         id,
		followerID: followerID,
		followedID: followedID,
		createdAt:  createdAt,
	}, nil
}

func (e *Edge) ID() uint {
	return e.id
}

func (e *Edge) FollowerID() uint {
	return e.followerID
}

func (e *Edge) FollowedID() uint {
	return e.followedID
}

func (e *Edge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Edge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("edge ID cannot be zero")
	}
	e.id = id
	return nil
}
