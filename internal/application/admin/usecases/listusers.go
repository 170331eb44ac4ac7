package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/application/admin/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/mapper"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, log logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: log}
}

// Execute returns every account, newest first. A failed query yields an
// empty list.
func (uc *ListUsersUseCase) Execute(ctx context.Context) []dto.UserDTO {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return []dto.UserDTO{}
	}
	return mapper.MapSlice(users, dto.ToUserDTO)
}
