package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type CreateReviewCommand struct {
	AuthorID uint
	TicketID uint
	Rating   int
	Headline string
	Body     string
}

type CreateReviewResult struct {
	ReviewID  uint
	TicketID  uint
	Rating    int
	Headline  string
	CreatedAt time.Time
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	uc.logger.Infow("executing create review use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	// The target ticket must be live; anyone may review any ticket,
	// including their own.
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	headline := utils.SanitizeText(cmd.Headline)
	body := utils.SanitizeText(cmd.Body)

	newReview, err := review.NewReview(cmd.TicketID, cmd.AuthorID, cmd.Rating, headline, body)
	if err != nil {
		uc.logger.Warnw("invalid create review command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, newReview); err != nil {
		uc.logger.Errorw("failed to save review", "error", err)
		return nil, err
	}

	uc.logger.Infow("review created", "review_id", newReview.ID(), "ticket_id", cmd.TicketID)

	return &CreateReviewResult{
		ReviewID:  newReview.ID(),
		TicketID:  newReview.TicketID(),
		Rating:    newReview.Rating(),
		Headline:  newReview.Headline(),
		CreatedAt: newReview.CreatedAt(),
	}, nil
}
