package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/application/admin/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/mapper"
)

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, log logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: log}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context) ([]dto.CompanyDTO, error) {
	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, errors.NewUpstreamError("Could not load companies").WithCause(err)
	}
	return mapper.MapSlice(companies, dto.ToCompanyDTO), nil
}
