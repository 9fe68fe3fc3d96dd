package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/shared/authorization"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type UpdateReviewCommand struct {
	ReviewID uint
	ActorID  uint
	Rating   int
	Headline string
	Body     string
}

type UpdateReviewResult struct {
	ReviewID  uint
	TicketID  uint
	Rating    int
	Headline  string
	CreatedAt time.Time
}

type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewUpdateReviewUseCase(reviewRepo review.Repository, logger logger.Interface) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error) {
	uc.logger.Infow("executing update review use case", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)

	r, err := uc.reviewRepo.GetByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	if err := authorization.RequireOwner(cmd.ActorID, r.AuthorID()); err != nil {
		uc.logger.Warnw("review update rejected", "review_id", cmd.ReviewID, "actor_id", cmd.ActorID)
		return nil, err
	}

	headline := utils.SanitizeText(cmd.Headline)
	body := utils.SanitizeText(cmd.Body)
	if err := r.UpdateDetails(cmd.Rating, headline, body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, r); err != nil {
		uc.logger.Errorw("failed to update review", "review_id", cmd.ReviewID, "error", err)
		return nil, err
	}

	uc.logger.Infow("review updated", "review_id", r.ID())

	return &UpdateReviewResult{
		ReviewID:  r.ID(),
		TicketID:  r.TicketID(),
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		CreatedAt: r.CreatedAt(),
	}, nil
}
