package repository

import (
	"context"
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/mappers"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

type UserRepository struct {
	gw gateway.Gateway
}

func NewUserRepository(gw gateway.Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	if err := r.gw.Insert(ctx, constants.TableUsers, model); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) findOne(ctx context.Context, q *gateway.Query) (*user.User, error) {
	var rows []models.UserModel
	if _, err := r.gw.Select(ctx, q.Single(), &rows); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mappers.UserToDomain(&rows[0]), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return r.findOne(ctx, gateway.From(constants.TableUsers).Eq("id", id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, gateway.From(constants.TableUsers).Eq("email", email))
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var rows []models.UserModel
	q := gateway.From(constants.TableUsers).
		Select("id").
		Or(gateway.F("username", gateway.OpEq, username), gateway.F("email", gateway.OpEq, email)).
		Single()
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	return len(rows) > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var rows []models.UserModel
	q := gateway.From(constants.TableUsers).
		Select("id", "username", "email", "role", "created_at").
		OrderBy("created_at", true).
		OrderBy("id", true)
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		users = append(users, mappers.UserToDomain(&rows[i]))
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.gw, gateway.From(constants.TableUsers))
}

func (r *UserRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return count(ctx, r.gw, gateway.From(constants.TableUsers).Eq("role", role.String()))
}

type idRow struct {
	ID uint `json:"id"`
}

// count runs q as an exact count that fetches a single id column.
func count(ctx context.Context, gw gateway.Gateway, q *gateway.Query) (int64, error) {
	var rows []idRow
	total, err := gw.Select(ctx, q.Select("id").Range(0, 1).WithCount(), &rows)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", q.Table, err)
	}
	return total, nil
}
