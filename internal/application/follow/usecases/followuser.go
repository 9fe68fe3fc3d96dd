package usecases

import (
	"context"
	"time"

	"revu/internal/domain/follow"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

// FollowUserCommand subscribes FollowerID to the posts of the user named
// Username.
type FollowUserCommand struct {
	FollowerID uint
	Username   string
}

type FollowUserResult struct {
	EdgeID     uint
	FollowedID uint
	Username   string
	CreatedAt  time.Time
}

type FollowUserUseCase struct {
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewFollowUserUseCase(
	followRepo follow.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *FollowUserUseCase {
	return &FollowUserUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	uc.logger.Infow("executing follow user use case", "follower_id", cmd.FollowerID, "username", cmd.Username)

	username := utils.SanitizeText(cmd.Username)
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}

	followed, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	edge, err := follow.NewEdge(cmd.FollowerID, followed.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The repository turns a duplicate (follower, followed) pair into a
	// conflict error.
	if err := uc.followRepo.Create(ctx, edge); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("duplicate follow rejected", "follower_id", cmd.FollowerID, "followed_id", followed.ID())
		} else {
			uc.logger.Errorw("failed to save follow edge", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("follow edge created", "edge_id", edge.ID(), "follower_id", cmd.FollowerID, "followed_id", followed.ID())

	return &FollowUserResult{
		EdgeID:     edge.ID(),
		FollowedID: followed.ID(),
		Username:   followed.Username(),
		CreatedAt:  edge.CreatedAt(),
	}, nil
}
