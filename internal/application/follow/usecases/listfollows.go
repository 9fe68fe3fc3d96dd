package usecases

import (
	"context"
	"time"

	"revu/internal/domain/follow"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type ListFollowsQuery struct {
	UserID uint
}

// FollowEntry is one edge seen from the querying user's side, with the
// other party's username resolved.
type FollowEntry struct {
	EdgeID    uint
	UserID    uint
	Username  string
	CreatedAt time.Time
}

type ListFollowsResult struct {
	// Following lists the users the querying user subscribes to.
	Following []FollowEntry
	// Followers lists the users subscribed to the querying user.
	Followers []FollowEntry
}

type ListFollowsUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListFollowsUseCase(
	followRepo follow.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListFollowsUseCase {
	return &ListFollowsUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListFollowsUseCase) Execute(ctx context.Context, query ListFollowsQuery) (*ListFollowsResult, error) {
	uc.logger.Debugw("executing list follows use case", "user_id", query.UserID)

	following, err := uc.followRepo.ListByFollower(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	followers, err := uc.followRepo.ListByFollowed(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	// Resolve every counterpart's username in one round trip.
	idSet := make(map[uint]struct{}, len(following)+len(followers))
	for _, e := range following {
		idSet[e.FollowedID()] = struct{}{}
	}
	for _, e := range followers {
		idSet[e.FollowerID()] = struct{}{}
	}
	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	usernames := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		users, err := uc.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			usernames[u.ID()] = u.Username()
		}
	}

	result := &ListFollowsResult{
		Following: make([]FollowEntry, 0, len(following)),
		Followers: make([]FollowEntry, 0, len(followers)),
	}
	for _, e := range following {
		result.Following = append(result.Following, FollowEntry{
			EdgeID:    e.ID(),
			UserID:    e.FollowedID(),
			Username:  usernames[e.FollowedID()],
			CreatedAt: e.CreatedAt(),
		})
	}
	for _, e := range followers {
		result.Followers = append(result.Followers, FollowEntry{
			EdgeID:    e.ID(),
			UserID:    e.FollowerID(),
			Username:  usernames[e.FollowerID()],
			CreatedAt: e.CreatedAt(),
		})
	}

	return result, nil
}
