package usecases

import "context"

type FollowUserExecutor interface {
	Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error)
}

type UnfollowUserExecutor interface {
	Execute(ctx context.Context, cmd UnfollowUserCommand) error
}

type ListFollowsExecutor interface {
	Execute(ctx context.Context, query ListFollowsQuery) (*ListFollowsResult, error)
}
