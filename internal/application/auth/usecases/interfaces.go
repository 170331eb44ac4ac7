package usecases

import "context"

// PasswordHasher hashes new passwords and checks stored ones.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashed string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
