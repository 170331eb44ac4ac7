package usecases

import (
	"context"
	"sort"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// GetReferenceDataUseCase loads the category and priority choices for the
// manual ticket form. A failed lookup yields an empty list.
type GetReferenceDataUseCase struct {
	refRepo ticket.ReferenceRepository
	logger  logger.Interface
}

func NewGetReferenceDataUseCase(refRepo ticket.ReferenceRepository, logger logger.Interface) *GetReferenceDataUseCase {
	return &GetReferenceDataUseCase{refRepo: refRepo, logger: logger}
}

func (uc *GetReferenceDataUseCase) Execute(ctx context.Context) *dto.ReferenceDataDTO {
	out := &dto.ReferenceDataDTO{}

	categories, err := uc.refRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load categories", "error", err)
	} else {
		sort.SliceStable(categories, func(i, j int) bool { return categories[i].SortOrder < categories[j].SortOrder })
		out.Categories = categories
	}

	priorities, err := uc.refRepo.ListPriorities(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load priorities", "error", err)
	} else {
		sort.SliceStable(priorities, func(i, j int) bool { return priorities[i].SortOrder < priorities[j].SortOrder })
		out.Priorities = priorities
	}

	return out
}
