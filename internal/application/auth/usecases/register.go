package usecases

import (
	"context"
	"strings"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uint
	Role   user.Role
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute creates a client admin account. The caller still has to log in.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	username := strings.TrimSpace(cmd.Username)
	email := strings.TrimSpace(cmd.Email)

	if utils.Blank(username, email, cmd.Password) {
		return nil, errors.NewValidationError("Please fill out all fields")
	}

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "error", err)
		return nil, errors.NewUpstreamError("Could not reach the database").WithCause(err)
	}
	if exists {
		return nil, errors.NewConflictError("Username or email already exists", "choose another username or email")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Could not create the account").WithCause(err)
	}

	u, err := user.NewUser(username, email, hash, user.DefaultRole)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("Username or email already exists", "choose another username or email")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewUpstreamError("Could not create the account").WithCause(err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", u.Role())
	return &RegisterResult{UserID: u.ID(), Role: u.Role()}, nil
}
