package usecases

import (
	"context"
	"time"

	"revu/internal/domain/user"
	"revu/internal/shared/logger"
)

type ListUsersQuery struct {
	// ExcludeUserID removes one user from the listing, typically the
	// requester browsing for people to follow.
	ExcludeUserID uint
}

type UserSummary struct {
	UserID    uint
	Username  string
	CreatedAt time.Time
}

type ListUsersResult struct {
	Users []UserSummary
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	uc.logger.Debugw("executing list users use case", "exclude_user_id", query.ExcludeUserID)

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		if u.ID() == query.ExcludeUserID {
			continue
		}
		summaries = append(summaries, UserSummary{
			UserID:    u.ID(),
			Username:  u.Username(),
			CreatedAt: u.CreatedAt(),
		})
	}

	return &ListUsersResult{Users: summaries}, nil
}
