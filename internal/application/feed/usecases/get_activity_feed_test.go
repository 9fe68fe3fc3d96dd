package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revu/internal/domain/feed"
	"revu/internal/domain/follow"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
)

const (
	alice uint = 1
	bob   uint = 2
	carol uint = 3
)

func ticketAt(t *testing.T, id, authorID uint, at time.Time) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(id, "Ticket", "", authorID, "", at, at)
	require.NoError(t, err)
	return tk
}

func reviewAt(t *testing.T, id, ticketID, authorID uint, at time.Time) *review.Review {
	t.Helper()
	r, err := review.ReconstructReview(id, ticketID, 4, "Review", "", authorID, at, at)
	require.NoError(t, err)
	return r
}

func edgeBetween(t *testing.T, id, followerID, followedID uint) *follow.Edge {
	t.Helper()
	e, err := follow.ReconstructEdge(id, followerID, followedID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return e
}

func namedUsers(t *testing.T) *mockUserRepository {
	t.Helper()
	names := map[uint]string{alice: "alice", bob: "bob", carol: "carol"}
	return &mockUserRepository{
		GetByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			users := make([]*user.User, 0, len(ids))
			for _, id := range ids {
				u, err := user.ReconstructUser(id, names[id], "$2a$12$hash", true, false, created, created)
				require.NoError(t, err)
				users = append(users, u)
			}
			return users, nil
		},
	}
}

func itemKeys(items []FeedItem) []feed.Key {
	keys := make([]feed.Key, len(items))
	for i, it := range items {
		keys[i] = feed.Key{Kind: it.Kind, ID: it.ID}
	}
	return keys
}

// Alice follows Bob but not Carol. Carol reviewed one of Alice's tickets,
// so that single review reaches Alice, while the rest of Carol's activity
// stays out of her feed.
func TestGetActivityFeedUseCase_Execute_MergesAllSources(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	followRepo := &mockFollowRepository{
		ListByFollowerFunc: func(ctx context.Context, userID uint) ([]*follow.Edge, error) {
			return []*follow.Edge{edgeBetween(t, 1, alice, bob)}, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
			assert.ElementsMatch(t, []uint{alice, bob}, authorIDs)
			return []*ticket.Ticket{
				ticketAt(t, 10, alice, base),
				ticketAt(t, 11, bob, base.Add(2*time.Hour)),
			}, nil
		},
	}
	reviewRepo := &mockReviewRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
			return []*review.Review{
				reviewAt(t, 20, 99, bob, base.Add(1*time.Hour)),
			}, nil
		},
		ListByTicketAuthorFunc: func(ctx context.Context, ticketAuthorID uint) ([]*review.Review, error) {
			assert.Equal(t, alice, ticketAuthorID)
			return []*review.Review{
				reviewAt(t, 21, 10, carol, base.Add(3*time.Hour)),
			}, nil
		},
	}

	uc := NewGetActivityFeedUseCase(ticketRepo, reviewRepo, followRepo, namedUsers(t), &mockLogger{})
	result, err := uc.Execute(context.Background(), GetActivityFeedQuery{ViewerID: alice})

	require.NoError(t, err)
	assert.Equal(t, []feed.Key{
		{Kind: feed.KindReview, ID: 21},
		{Kind: feed.KindTicket, ID: 11},
		{Kind: feed.KindReview, ID: 20},
		{Kind: feed.KindTicket, ID: 10},
	}, itemKeys(result.Items))

	// Carol is not followed, yet her reply surfaces with her name on it.
	assert.Equal(t, "carol", result.Items[0].AuthorUsername)
	require.NotNil(t, result.Items[0].Review)
	assert.Equal(t, uint(10), result.Items[0].Review.TicketID)

	require.NotNil(t, result.Items[1].Ticket)
	assert.Equal(t, "bob", result.Items[1].AuthorUsername)
}

// A followed user's review of the viewer's own ticket arrives through both
// the follow path and the reply path; it must appear once.
func TestGetActivityFeedUseCase_Execute_DeduplicatesReplyFromFollowed(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	followRepo := &mockFollowRepository{
		ListByFollowerFunc: func(ctx context.Context, userID uint) ([]*follow.Edge, error) {
			return []*follow.Edge{edgeBetween(t, 1, alice, bob)}, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{ticketAt(t, 10, alice, base)}, nil
		},
	}
	bobsReply := reviewAt(t, 20, 10, bob, base.Add(time.Hour))
	reviewRepo := &mockReviewRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
			return []*review.Review{bobsReply}, nil
		},
		ListByTicketAuthorFunc: func(ctx context.Context, ticketAuthorID uint) ([]*review.Review, error) {
			return []*review.Review{bobsReply}, nil
		},
	}

	uc := NewGetActivityFeedUseCase(ticketRepo, reviewRepo, followRepo, namedUsers(t), &mockLogger{})
	result, err := uc.Execute(context.Background(), GetActivityFeedQuery{ViewerID: alice})

	require.NoError(t, err)
	assert.Equal(t, []feed.Key{
		{Kind: feed.KindReview, ID: 20},
		{Kind: feed.KindTicket, ID: 10},
	}, itemKeys(result.Items))
}

// With nobody followed and no replies, the feed collapses to the viewer's
// own posts.
func TestGetActivityFeedUseCase_Execute_MatchesOwnPostsWhenIsolated(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ticketRepo := &mockTicketRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
			assert.Equal(t, []uint{alice}, authorIDs)
			return []*ticket.Ticket{ticketAt(t, 10, alice, base)}, nil
		},
	}
	reviewRepo := &mockReviewRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
			return []*review.Review{reviewAt(t, 20, 99, alice, base.Add(time.Hour))}, nil
		},
	}
	users := namedUsers(t)

	feedUC := NewGetActivityFeedUseCase(ticketRepo, reviewRepo, &mockFollowRepository{}, users, &mockLogger{})
	feedResult, err := feedUC.Execute(context.Background(), GetActivityFeedQuery{ViewerID: alice})
	require.NoError(t, err)

	ownUC := NewGetOwnPostsUseCase(ticketRepo, reviewRepo, users, &mockLogger{})
	ownResult, err := ownUC.Execute(context.Background(), GetOwnPostsQuery{UserID: alice})
	require.NoError(t, err)

	assert.Equal(t, ownResult.Items, feedResult.Items)
}

func TestGetOwnPostsUseCase_Execute_OnlyOwnActivity(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	ticketRepo := &mockTicketRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*ticket.Ticket, error) {
			assert.Equal(t, []uint{bob}, authorIDs)
			return []*ticket.Ticket{ticketAt(t, 11, bob, base)}, nil
		},
	}
	reviewRepo := &mockReviewRepository{
		ListByAuthorIDsFunc: func(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
			assert.Equal(t, []uint{bob}, authorIDs)
			return []*review.Review{reviewAt(t, 20, 10, bob, base.Add(time.Hour))}, nil
		},
	}

	uc := NewGetOwnPostsUseCase(ticketRepo, reviewRepo, namedUsers(t), &mockLogger{})
	result, err := uc.Execute(context.Background(), GetOwnPostsQuery{UserID: bob})

	require.NoError(t, err)
	assert.Equal(t, []feed.Key{
		{Kind: feed.KindReview, ID: 20},
		{Kind: feed.KindTicket, ID: 11},
	}, itemKeys(result.Items))
	for _, item := range result.Items {
		assert.Equal(t, "bob", item.AuthorUsername)
	}
}
