// Package feed models the polymorphic "post" view over tickets and reviews
// used for feed merging and ordering. Storage stays separate per entity;
// posts only unify owner and timestamp access, keyed by (kind, id) so the
// two entity kinds never collide on overlapping numeric IDs.
package feed

import (
	"sort"
	"time"

	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
)

// Kind tags the concrete entity behind a post.
type Kind string

const (
	KindTicket Kind = "ticket"
	KindReview Kind = "review"
)

// Key identifies a post across both entity kinds.
type Key struct {
	Kind Kind
	ID   uint
}

// Post is the tagged-union view of a ticket or review.
type Post interface {
	Key() Key
	AuthorID() uint
	PostedAt() time.Time
}

// TicketPost adapts a ticket to the post view.
type TicketPost struct {
	Ticket *ticket.Ticket
}

func (p TicketPost) Key() Key            { return Key{Kind: KindTicket, ID: p.Ticket.ID()} }
func (p TicketPost) AuthorID() uint      { return p.Ticket.AuthorID() }
func (p TicketPost) PostedAt() time.Time { return p.Ticket.CreatedAt() }

// ReviewPost adapts a review to the post view.
type ReviewPost struct {
	Review *review.Review
}

func (p ReviewPost) Key() Key            { return Key{Kind: KindReview, ID: p.Review.ID()} }
func (p ReviewPost) AuthorID() uint      { return p.Review.AuthorID() }
func (p ReviewPost) PostedAt() time.Time { return p.Review.CreatedAt() }

// kindRank fixes the tie-break order between entity kinds.
func kindRank(k Kind) int {
	if k == KindTicket {
		return 0
	}
	return 1
}

// SortDescending orders posts newest first. Ties on the timestamp are broken
// deterministically: tickets before reviews, then higher ID first.
func SortDescending(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, tj := posts[i].PostedAt(), posts[j].PostedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		ki, kj := posts[i].Key(), posts[j].Key()
		if ki.Kind != kj.Kind {
			return kindRank(ki.Kind) < kindRank(kj.Kind)
		}
		return ki.ID > kj.ID
	})
}

// Dedupe removes posts sharing a key, keeping the first occurrence and the
// input order of survivors.
func Dedupe(posts []Post) []Post {
	seen := make(map[Key]bool, len(posts))
	result := posts[:0]
	for _, p := range posts {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		result = append(result, p)
	}
	return result
}
