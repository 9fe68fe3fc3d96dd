package usecases

import (
	"context"
	"time"

	ticketusecases "revu/internal/application/ticket/usecases"
	"revu/internal/domain/review"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

// CreateReviewWithTicketCommand creates a ticket and a review of it in one
// request, for reviewing a work nobody has asked about yet.
type CreateReviewWithTicketCommand struct {
	AuthorID          uint
	TicketTitle       string
	TicketDescription string
	TicketImage       *ticketusecases.ImageUpload
	Rating            int
	Headline          string
	Body              string
}

type CreateReviewWithTicketResult struct {
	TicketID     uint
	ReviewID     uint
	ImagePath    string
	ImageWarning string
	CreatedAt    time.Time
}

type CreateReviewWithTicketUseCase struct {
	createTicket ticketusecases.CreateTicketExecutor
	reviewRepo   review.Repository
	logger       logger.Interface
}

func NewCreateReviewWithTicketUseCase(
	createTicket ticketusecases.CreateTicketExecutor,
	reviewRepo review.Repository,
	logger logger.Interface,
) *CreateReviewWithTicketUseCase {
	return &CreateReviewWithTicketUseCase{
		createTicket: createTicket,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

func (uc *CreateReviewWithTicketUseCase) Execute(ctx context.Context, cmd CreateReviewWithTicketCommand) (*CreateReviewWithTicketResult, error) {
	uc.logger.Infow("executing create review with ticket use case", "author_id", cmd.AuthorID)

	// Both halves are validated before anything is persisted so a bad
	// review does not leave an orphaned ticket behind.
	headline := utils.SanitizeText(cmd.Headline)
	body := utils.SanitizeText(cmd.Body)
	if _, err := review.NewReview(1, cmd.AuthorID, cmd.Rating, headline, body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ticketResult, err := uc.createTicket.Execute(ctx, ticketusecases.CreateTicketCommand{
		AuthorID:    cmd.AuthorID,
		Title:       cmd.TicketTitle,
		Description: cmd.TicketDescription,
		Image:       cmd.TicketImage,
	})
	if err != nil {
		return nil, err
	}

	newReview, err := review.NewReview(ticketResult.TicketID, cmd.AuthorID, cmd.Rating, headline, body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Create(ctx, newReview); err != nil {
		uc.logger.Errorw("failed to save review for new ticket", "ticket_id", ticketResult.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("review with ticket created", "ticket_id", ticketResult.TicketID, "review_id", newReview.ID())

	return &CreateReviewWithTicketResult{
		TicketID:     ticketResult.TicketID,
		ReviewID:     newReview.ID(),
		ImagePath:    ticketResult.ImagePath,
		ImageWarning: ticketResult.ImageWarning,
		CreatedAt:    newReview.CreatedAt(),
	}, nil
}
