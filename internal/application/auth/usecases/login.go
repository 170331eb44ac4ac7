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

// Destination is the screen a user lands on after logging in.
type Destination string

const (
	DestinationAdminHome        Destination = "admin_home"
	DestinationTechDashboard    Destination = "tech_dashboard"
	DestinationCompanyDashboard Destination = "company_dashboard"
	DestinationCompanyCreate    Destination = "company_create"
	DestinationLanding          Destination = "landing"
)

type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries everything the session needs.
type LoginResult struct {
	UserID      uint
	Username    string
	Email       string
	Role        user.Role
	CompanyID   *uint
	Destination Destination
}

type LoginUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	memberRepo  company.UserRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	memberRepo company.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		memberRepo:  memberRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if utils.Blank(email, cmd.Password) {
		return nil, errors.NewValidationError("Please enter your email and password")
	}

	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, errors.NewUpstreamError("Could not reach the database").WithCause(err)
	}
	if u == nil {
		uc.logger.Debugw("login for unknown email", "email", utils.MaskEmail(email))
		return nil, errors.NewInvalidCredentialsError()
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("password mismatch", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	result := &LoginResult{
		UserID:   u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role(),
	}

	switch u.Role() {
	case user.RoleSystemAdmin:
		result.Destination = DestinationAdminHome
	case user.RoleTechAdmin:
		result.Destination = DestinationTechDashboard
	case user.RoleClientAdmin:
		c, err := uc.companyRepo.FindByOwnerID(ctx, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to look up owned company", "error", err, "user_id", u.ID())
			return nil, errors.NewUpstreamError("Could not reach the database").WithCause(err)
		}
		if c == nil {
			result.Destination = DestinationCompanyCreate
			break
		}
		id := c.ID()
		result.CompanyID = &id
		result.Destination = DestinationCompanyDashboard
	case user.RoleCompanyOperator:
		m, err := uc.memberRepo.FindActiveByEmail(ctx, u.Email())
		if err != nil {
			uc.logger.Errorw("failed to look up company membership", "error", err, "user_id", u.ID())
			return nil, errors.NewUpstreamError("Could not reach the database").WithCause(err)
		}
		if m != nil {
			id := m.CompanyID()
			result.CompanyID = &id
		}
		result.Destination = DestinationLanding
	default:
		result.Destination = DestinationLanding
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role(), "destination", result.Destination)
	return result, nil
}
