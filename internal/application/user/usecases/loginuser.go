package usecases

import (
	"context"

	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/utils"
)

type LoginUserCommand struct {
	Username string
	Password string
}

type LoginUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginUserCommand) (*AuthResult, error) {
	username := utils.SanitizeText(cmd.Username)
	uc.logger.Infow("executing login user use case", "username", username)

	// Unknown usernames and wrong passwords produce the same answer so
	// login attempts cannot probe for accounts.
	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if !u.IsActive() {
		uc.logger.Warnw("login rejected for inactive account", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed", "username", username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresAt, err := uc.tokens.Issue(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &AuthResult{
		UserID:    u.ID(),
		Username:  u.Username(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
