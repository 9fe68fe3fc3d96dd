package usecases

import (
	"context"

	"revu/internal/domain/feed"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type GetOwnPostsQuery struct {
	UserID uint
}

// GetOwnPostsUseCase lists everything the user has posted themselves,
// tickets and reviews interleaved newest first.
type GetOwnPostsUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetOwnPostsUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetOwnPostsUseCase {
	return &GetOwnPostsUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetOwnPostsUseCase) Execute(ctx context.Context, query GetOwnPostsQuery) (*FeedResult, error) {
	uc.logger.Debugw("executing get own posts use case", "user_id", query.UserID)

	authorIDs := []uint{query.UserID}
	tickets, err := uc.ticketRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	posts := make([]feed.Post, 0, len(tickets)+len(reviews))
	for _, t := range tickets {
		posts = append(posts, feed.TicketPost{Ticket: t})
	}
	for _, r := range reviews {
		posts = append(posts, feed.ReviewPost{Review: r})
	}

	items, err := renderPosts(ctx, uc.userRepo, posts)
	if err != nil {
		return nil, err
	}
	return &FeedResult{Items: items}, nil
}
