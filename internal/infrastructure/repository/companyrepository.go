package repository

import (
	"context"
	"fmt"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/mappers"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

type CompanyRepository struct {
	gw gateway.Gateway
}

func NewCompanyRepository(gw gateway.Gateway) *CompanyRepository {
	return &CompanyRepository{gw: gw}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model := mappers.CompanyToModel(c)
	if err := r.gw.Insert(ctx, constants.TableCompanies, model); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CompanyRepository) find(ctx context.Context, q *gateway.Query) ([]*company.Company, error) {
	var rows []models.CompanyModel
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	out := make([]*company.Company, 0, len(rows))
	for i := range rows {
		out = append(out, mappers.CompanyToDomain(&rows[i]))
	}
	return out, nil
}

func (r *CompanyRepository) first(ctx context.Context, q *gateway.Query) (*company.Company, error) {
	list, err := r.find(ctx, q.Single())
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*company.Company, error) {
	return r.first(ctx, gateway.From(constants.TableCompanies).Eq("id", id))
}

// FindByOwnerID returns the oldest company registered by ownerID.
func (r *CompanyRepository) FindByOwnerID(ctx context.Context, ownerID uint) (*company.Company, error) {
	return r.first(ctx, gateway.From(constants.TableCompanies).Eq("owner_id", ownerID).OrderBy("id", false))
}

func (r *CompanyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*company.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, gateway.From(constants.TableCompanies).In("id", gateway.ValuesOf(ids)...))
}

// List returns every company in id order.
func (r *CompanyRepository) List(ctx context.Context) ([]*company.Company, error) {
	return r.find(ctx, gateway.From(constants.TableCompanies).OrderBy("id", false))
}

func (r *CompanyRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.gw, gateway.From(constants.TableCompanies))
}

type CompanyUserRepository struct {
	gw gateway.Gateway
}

func NewCompanyUserRepository(gw gateway.Gateway) *CompanyUserRepository {
	return &CompanyUserRepository{gw: gw}
}

func (r *CompanyUserRepository) Create(ctx context.Context, u *company.CompanyUser) error {
	model := mappers.CompanyUserToModel(u)
	if err := r.gw.Insert(ctx, constants.TableCompanyUsers, model); err != nil {
		return fmt.Errorf("failed to create company user: %w", err)
	}
	return u.SetID(model.ID)
}

func (r *CompanyUserRepository) FindActiveByEmail(ctx context.Context, email string) (*company.CompanyUser, error) {
	q := gateway.From(constants.TableCompanyUsers).Eq("email", email).Eq("active", true).OrderBy("id", false).Single()
	var rows []models.CompanyUserModel
	if _, err := r.gw.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to find company user: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mappers.CompanyUserToDomain(&rows[0]), nil
}

func (r *CompanyUserRepository) CountByCompany(ctx context.Context, companyID uint) (int64, error) {
	return count(ctx, r.gw, gateway.From(constants.TableCompanyUsers).Eq("company_id", companyID))
}
