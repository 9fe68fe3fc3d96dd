package usecases

import (
	"context"
	"time"

	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

const minPasswordLength = 8

type RegisterUserCommand struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// AuthResult is returned by both registration and login; a fresh account is
// signed in immediately.
type AuthResult struct {
	UserID    uint
	Username  string
	Token     string
	ExpiresAt time.Time
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*AuthResult, error) {
	username := utils.SanitizeText(cmd.Username)
	uc.logger.Infow("executing register user use case", "username", username)

	if err := user.ValidateUsername(username); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.Password != cmd.PasswordConfirm {
		return nil, errors.NewValidationError("passwords do not match")
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.NewConflictError("username is already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password", err.Error())
	}

	newUser, err := user.NewUser(username, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "username", username, "error", err)
		return nil, err
	}

	token, expiresAt, err := uc.tokens.Issue(newUser.ID(), newUser.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue token after registration", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token", err.Error())
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", username)

	return &AuthResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
