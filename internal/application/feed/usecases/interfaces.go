package usecases

import "context"

type GetActivityFeedExecutor interface {
	Execute(ctx context.Context, query GetActivityFeedQuery) (*FeedResult, error)
}

type GetOwnPostsExecutor interface {
	Execute(ctx context.Context, query GetOwnPostsQuery) (*FeedResult, error)
}
