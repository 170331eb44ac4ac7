package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/application/company/dto"
)

// PasswordHasher hashes collaborator passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) *dto.DashboardDTO
}

type CreateCompanyUserExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyUserCommand) (*CreateCompanyUserResult, error)
}
