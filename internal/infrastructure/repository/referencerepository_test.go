package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
)

func TestReferenceRepository(t *testing.T) {
	gw, db := setupGateway(t)
	repo := NewReferenceRepository(gw)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]models.CategoryModel{
		{ID: 1, Name: "Hardware", SortOrder: 2},
		{ID: 2, Name: "Software", SortOrder: 1},
		{ID: 3, Name: "Network", SortOrder: 3},
	}).Error)
	require.NoError(t, db.Create(&[]models.PriorityModel{
		{ID: 1, Code: "low", Name: "Low", SortOrder: 1},
		{ID: 3, Code: "high", Name: "High", SortOrder: 3},
		{ID: 2, Code: "medium", Name: "Medium", SortOrder: 2},
	}).Error)

	cats, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "Software", cats[0].Name)
	assert.Equal(t, "Network", cats[2].Name)

	pris, err := repo.ListPriorities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "medium", "high"}, []string{pris[0].Code, pris[1].Code, pris[2].Code})

	byID, err := repo.CategoriesByIDs(ctx, []int{1, 3, 42})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "Hardware", byID[1].Name)
	_, ok := byID[42]
	assert.False(t, ok)

	pByID, err := repo.PrioritiesByIDs(ctx, []int{2})
	require.NoError(t, err)
	assert.Equal(t, "Medium", pByID[2].Name)

	empty, err := repo.CategoriesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
