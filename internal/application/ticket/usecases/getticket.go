package usecases

import (
	"context"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type TicketReview struct {
	ReviewID  uint
	Rating    int
	Headline  string
	Body      string
	AuthorID  uint
	CreatedAt time.Time
}

type GetTicketResult struct {
	TicketID    uint
	Title       string
	Description string
	AuthorID    uint
	ImagePath   string
	CreatedAt   time.Time
	Reviews     []TicketReview
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket reviews", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	result := &GetTicketResult{
		TicketID:    t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		AuthorID:    t.AuthorID(),
		ImagePath:   t.ImagePath(),
		CreatedAt:   t.CreatedAt(),
		Reviews:     make([]TicketReview, 0, len(reviews)),
	}
	for _, r := range reviews {
		result.Reviews = append(result.Reviews, TicketReview{
			ReviewID:  r.ID(),
			Rating:    r.Rating(),
			Headline:  r.Headline(),
			Body:      r.Body(),
			AuthorID:  r.AuthorID(),
			CreatedAt: r.CreatedAt(),
		})
	}

	return result, nil
}
