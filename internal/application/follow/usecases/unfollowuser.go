package usecases

import (
	"context"

	"revu/internal/domain/follow"
	"revu/internal/shared/authorization"
	"revu/internal/shared/logger"
)

type UnfollowUserCommand struct {
	EdgeID  uint
	ActorID uint
}

type UnfollowUserUseCase struct {
	followRepo follow.Repository
	logger     logger.Interface
}

func NewUnfollowUserUseCase(followRepo follow.Repository, logger logger.Interface) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) error {
	uc.logger.Infow("executing unfollow user use case", "edge_id", cmd.EdgeID, "actor_id", cmd.ActorID)

	edge, err := uc.followRepo.GetByID(ctx, cmd.EdgeID)
	if err != nil {
		return err
	}

	// Only the follower side of the edge may sever it.
	if err := authorization.RequireOwner(cmd.ActorID, edge.FollowerID()); err != nil {
		uc.logger.Warnw("unfollow rejected", "edge_id", cmd.EdgeID, "actor_id", cmd.ActorID)
		return err
	}

	if err := uc.followRepo.Delete(ctx, cmd.EdgeID); err != nil {
		uc.logger.Errorw("failed to delete follow edge", "edge_id", cmd.EdgeID, "error", err)
		return err
	}

	uc.logger.Infow("follow edge deleted", "edge_id", cmd.EdgeID)
	return nil
}
