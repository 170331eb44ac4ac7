package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// CreateCompanyCommand mirrors the company registration form. Only Name is
// required.
type CreateCompanyCommand struct {
	OwnerID        uint
	Name           string
	CommercialName string
	BusinessName   string
	CountryCode    string
	CountryNumber  string
	PhoneNumber    string
	City           string
	StateProvince  string
	AddressPrimary string
	Website        string
	ImageURL       string
	Active         bool
}

type CreateCompanyResult struct {
	CompanyID uint
	Name      string
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, log logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{companyRepo: companyRepo, logger: log}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	if cmd.OwnerID == 0 {
		return nil, errors.NewForbiddenError("You must log in to register a company")
	}
	if utils.Blank(cmd.Name) {
		return nil, errors.NewValidationError("The company name is required")
	}

	existing, err := uc.companyRepo.FindByOwnerID(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to check owned company", "error", err, "owner_id", cmd.OwnerID)
		return nil, errors.NewUpstreamError("Could not register the company").WithCause(err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("You already registered a company", existing.DisplayName())
	}

	c, err := company.NewCompany(cmd.Name, profileFrom(cmd), cmd.Active, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create company", "error", err, "owner_id", cmd.OwnerID)
		return nil, errors.NewUpstreamError("Could not register the company").WithCause(err)
	}

	uc.logger.Infow("company registered", "company_id", c.ID(), "owner_id", cmd.OwnerID)
	return &CreateCompanyResult{CompanyID: c.ID(), Name: c.Name()}, nil
}

func profileFrom(cmd CreateCompanyCommand) company.Profile {
	return company.Profile{
		CommercialName: utils.NilIfEmpty(cmd.CommercialName),
		BusinessName:   utils.NilIfEmpty(cmd.BusinessName),
		CountryCode:    utils.NilIfEmpty(cmd.CountryCode),
		CountryNumber:  utils.NilIfEmpty(cmd.CountryNumber),
		PhoneNumber:    utils.NilIfEmpty(cmd.PhoneNumber),
		City:           utils.NilIfEmpty(cmd.City),
		StateProvince:  utils.NilIfEmpty(cmd.StateProvince),
		AddressPrimary: utils.NilIfEmpty(cmd.AddressPrimary),
		Website:        utils.NilIfEmpty(cmd.Website),
		ImageURL:       utils.NilIfEmpty(cmd.ImageURL),
	}
}
