package user

import "context"

// Repository persists accounts. Finders return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// List returns every account, newest first.
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
}
