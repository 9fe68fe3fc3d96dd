package usecases

import "context"

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error)
}

type CreateReviewWithTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewWithTicketCommand) (*CreateReviewWithTicketResult, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) error
}
