package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/domain/user"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
)

func TestTicketMapper_KeepsNullClassification(t *testing.T) {
	m := NewTicketMapper()
	tk, err := ticket.NewTicket(3, "VPN down", "cannot reach the office", nil, nil)
	require.NoError(t, err)

	model := m.ToModel(tk)
	assert.Nil(t, model.CategoryID)
	assert.Nil(t, model.PriorityID)
	assert.Equal(t, "open", model.Status)
	assert.Equal(t, uint(3), model.CompanyID)

	model.ID = 11
	back := m.ToDomain(model)
	assert.Equal(t, uint(11), back.ID())
	assert.Equal(t, vo.StatusOpen, back.Status())
	assert.Nil(t, back.CategoryID())
}

func TestTicketMapper_ToDomainList(t *testing.T) {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	cat := 4
	rows := []models.TicketModel{
		{ID: 1, CompanyID: 2, Title: "a", Status: "pending", CategoryID: &cat, ResponseDueAt: &due},
		{ID: 2, CompanyID: 2, Title: "b", Status: "closed"},
	}

	list := NewTicketMapper().ToDomainList(rows)
	require.Len(t, list, 2)
	assert.Equal(t, 4, *list[0].CategoryID())
	assert.Equal(t, due, *list[0].ResponseDueAt())
	assert.Equal(t, vo.StatusClosed, list[1].Status())
	assert.Nil(t, NewTicketMapper().ToDomain(nil))
}

func TestCompanyMapper_ProfileFields(t *testing.T) {
	city := "Quito"
	c, err := company.NewCompany("Acme SA", company.Profile{City: &city}, true, 9)
	require.NoError(t, err)

	model := CompanyToModel(c)
	assert.Equal(t, "Acme SA", model.Name)
	assert.Equal(t, &city, model.City)
	assert.True(t, model.Active)
	assert.Equal(t, uint(9), model.OwnerID)

	back := CompanyToDomain(model)
	assert.Equal(t, "Quito", *back.Profile().City)
	assert.Nil(t, back.Profile().Website)
}

func TestCompanyUserMapper(t *testing.T) {
	cu, err := company.NewCompanyUser(company.CompanyUserParams{
		CompanyID: 2, Email: "op@acme.com", PasswordHash: "h", Username: "op", Role: user.RoleCompanyOperator, Active: true,
	})
	require.NoError(t, err)

	model := CompanyUserToModel(cu)
	assert.Equal(t, "admin_op", model.Role)
	assert.Equal(t, uint(2), model.CompanyID)

	back := CompanyUserToDomain(model)
	assert.Equal(t, user.RoleCompanyOperator, back.Role())
	assert.True(t, back.IsActive())
}

func TestUserMapper(t *testing.T) {
	assert.Nil(t, UserToDomain(nil))

	u := UserToDomain(&models.UserModel{ID: 1, Username: "ana", Email: "ana@x.com", PasswordHash: "h", Role: "admin_cliente"})
	assert.Equal(t, user.RoleClientAdmin, u.Role())
	assert.Equal(t, "ana", UserToModel(u).Username)
}
