package usecases

import (
	"context"
	"strings"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

type CreateCompanyUserCommand struct {
	CompanyID uint
	Email     string
	Password  string
	Username  string
	Role      string
	Active    bool
	SelfieURL string
	Phone     string
}

type CreateCompanyUserResult struct {
	CompanyUserID uint
	Role          user.Role
}

// CreateCompanyUserUseCase provisions a collaborator inside the caller's
// company.
type CreateCompanyUserUseCase struct {
	companyUserRepo company.UserRepository
	hasher          PasswordHasher
	logger          logger.Interface
}

func NewCreateCompanyUserUseCase(companyUserRepo company.UserRepository, hasher PasswordHasher, log logger.Interface) *CreateCompanyUserUseCase {
	return &CreateCompanyUserUseCase{
		companyUserRepo: companyUserRepo,
		hasher:          hasher,
		logger:          log,
	}
}

func (uc *CreateCompanyUserUseCase) Execute(ctx context.Context, cmd CreateCompanyUserCommand) (*CreateCompanyUserResult, error) {
	if cmd.CompanyID == 0 {
		return nil, errors.NewForbiddenError("No company is linked to this session")
	}
	if utils.Blank(cmd.Email, cmd.Password, cmd.Username) {
		return nil, errors.NewValidationError("Email, password and internal username are required")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Could not create the user").WithCause(err)
	}

	cu, err := company.NewCompanyUser(company.CompanyUserParams{
		CompanyID:    cmd.CompanyID,
		Email:        cmd.Email,
		PasswordHash: hash,
		Username:     cmd.Username,
		Role:         user.ParseCompanyRole(strings.TrimSpace(cmd.Role)),
		Active:       cmd.Active,
		SelfieURL:    utils.NilIfEmpty(cmd.SelfieURL),
		Phone:        utils.NilIfEmpty(cmd.Phone),
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyUserRepo.Create(ctx, cu); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("A user with that email already exists")
		}
		uc.logger.Errorw("failed to create company user", "error", err, "company_id", cmd.CompanyID)
		return nil, errors.NewUpstreamError("Could not create the user").WithCause(err)
	}

	uc.logger.Infow("company user created", "company_user_id", cu.ID(), "company_id", cmd.CompanyID, "role", cu.Role())
	return &CreateCompanyUserResult{CompanyUserID: cu.ID(), Role: cu.Role()}, nil
}
