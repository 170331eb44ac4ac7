package company

import "context"

// Repository finders return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, c *Company) error
	FindByID(ctx context.Context, id uint) (*Company, error)
	FindByOwnerID(ctx context.Context, ownerID uint) (*Company, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Company, error)
	List(ctx context.Context) ([]*Company, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *CompanyUser) error
	// FindActiveByEmail returns the oldest active collaborator with email.
	FindActiveByEmail(ctx context.Context, email string) (*CompanyUser, error)
	CountByCompany(ctx context.Context, companyID uint) (int64, error)
}
