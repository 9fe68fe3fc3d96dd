package usecases

import (
	"context"

	"revu/internal/domain/review"
	"revu/internal/shared/authorization"
	"revu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	ActorID  uint
}

type DeleteReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewDeleteReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	uc.logger.Infow("executing delete review use case", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return err
	}

	if err := authorization.RequireOwner(cmd.ActorID, r.AuthorID()); err != nil {
		uc.logger.Warnw("review deletion rejected", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)
		return err
	}

	if err := uc.reviewRepo.Delete(ctx, cmd.ReviewID); err != nil {
		uc.logger.Errorw("failed to delete review", "review_id", cmd.ReviewID, "error", err)
		return err
	}

	uc.logger.Infow("review deleted", "review_id", cmd.ReviewID)
	return nil
}
