package usecases

import (
	"context"
	"time"

	"revu/internal/domain/feed"
	"revu/internal/domain/user"
)

// TicketItem is the feed projection of a ticket.
type TicketItem struct {
	Title       string
	Description string
	ImagePath   string
}

// ReviewItem is the feed projection of a review.
type ReviewItem struct {
	TicketID uint
	Rating   int
	Headline string
	Body     string
}

// FeedItem is one rendered post. Exactly one of Ticket and Review is set,
// matching Kind.
type FeedItem struct {
	Kind           feed.Kind
	ID             uint
	AuthorID       uint
	AuthorUsername string
	CreatedAt      time.Time
	Ticket         *TicketItem
	Review         *ReviewItem
}

type FeedResult struct {
	Items []FeedItem
}

// renderPosts projects deduped, sorted posts into feed items with author
// usernames resolved in one lookup.
func renderPosts(ctx context.Context, userRepo user.Repository, posts []feed.Post) ([]FeedItem, error) {
	posts = feed.Dedupe(posts)
	feed.SortDescending(posts)

	idSet := make(map[uint]struct{}, len(posts))
	for _, p := range posts {
		idSet[p.AuthorID()] = struct{}{}
	}
	usernames := make(map[uint]string, len(idSet))
	if len(idSet) > 0 {
		ids := make([]uint, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		users, err := userRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			usernames[u.ID()] = u.Username()
		}
	}

	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		item := FeedItem{
			Kind:           p.Key().Kind,
			ID:             p.Key().ID,
			AuthorID:       p.AuthorID(),
			AuthorUsername: usernames[p.AuthorID()],
			CreatedAt:      p.PostedAt(),
		}
		switch post := p.(type) {
		case feed.TicketPost:
			item.Ticket = &TicketItem{
				Title:       post.Ticket.Title(),
				Description: post.Ticket.Description(),
				ImagePath:   post.Ticket.ImagePath(),
			}
		case feed.ReviewPost:
			item.Review = &ReviewItem{
				TicketID: post.Review.TicketID(),
				Rating:   post.Review.Rating(),
				Headline: post.Review.Headline(),
				Body:     post.Review.Body(),
			}
		}
		items = append(items, item)
	}
	return items, nil
}
