package mappers

import (
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt(),
	}
}

func UserToDomain(m *models.UserModel) *user.User {
	if m == nil {
		return nil
	}
	return user.ReconstructUser(m.ID, m.Username, m.Email, m.PasswordHash, user.Role(m.Role), m.CreatedAt)
}
