package usecases

import (
	"context"

	"revu/internal/domain/feed"
	"revu/internal/domain/follow"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type GetActivityFeedQuery struct {
	ViewerID uint
}

// GetActivityFeedUseCase assembles the viewer's home feed: their own posts,
// the posts of everyone they follow, and reviews that reply to their
// tickets regardless of who wrote them.
type GetActivityFeedUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	followRepo follow.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetActivityFeedUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	followRepo follow.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetActivityFeedUseCase {
	return &GetActivityFeedUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetActivityFeedUseCase) Execute(ctx context.Context, query GetActivityFeedQuery) (*FeedResult, error) {
	uc.logger.Debugw("executing get activity feed use case", "viewer_id", query.ViewerID)

	edges, err := uc.followRepo.ListByFollower(ctx, query.ViewerID)
	if err != nil {
		return nil, err
	}

	// The viewer always sees their own posts, even with nobody followed.
	authorIDs := make([]uint, 0, len(edges)+1)
	authorIDs = append(authorIDs, query.ViewerID)
	for _, e := range edges {
		authorIDs = append(authorIDs, e.FollowedID())
	}

	tickets, err := uc.ticketRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	reviews, err := uc.reviewRepo.ListByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	// Replies to the viewer's tickets show up even from strangers. A
	// followed user's reply arrives through both paths; dedup keeps one.
	replies, err := uc.reviewRepo.ListByTicketAuthor(ctx, query.ViewerID)
	if err != nil {
		return nil, err
	}

	posts := make([]feed.Post, 0, len(tickets)+len(reviews)+len(replies))
	for _, t := range tickets {
		posts = append(posts, feed.TicketPost{Ticket: t})
	}
	for _, r := range reviews {
		posts = append(posts, feed.ReviewPost{Review: r})
	}
	for _, r := range replies {
		posts = append(posts, feed.ReviewPost{Review: r})
	}

	items, err := renderPosts(ctx, uc.userRepo, posts)
	if err != nil {
		return nil, err
	}
	return &FeedResult{Items: items}, nil
}
