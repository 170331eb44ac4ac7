package seeds

import (
	"context"
	"fmt"
	"strings"

	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/gateway"
	"github.com/EDUARX24/Tickets-AI/internal/infrastructure/persistence/models"
	"github.com/EDUARX24/Tickets-AI/internal/shared/constants"
)

// Categories returns the category rows the classification service maps onto.
func Categories() []models.CategoryModel {
	rows := make([]models.CategoryModel, 0, len(vo.CategoryCatalog))
	for i, c := range vo.CategoryCatalog {
		rows = append(rows, models.CategoryModel{ID: c.ID, Name: c.Name, SortOrder: i + 1})
	}
	return rows
}

func Priorities() []models.PriorityModel {
	rows := make([]models.PriorityModel, 0, len(vo.PriorityCatalog))
	for i, p := range vo.PriorityCatalog {
		rows = append(rows, models.PriorityModel{ID: p.ID, Code: strings.ToLower(p.Name), Name: p.Name, SortOrder: i + 1})
	}
	return rows
}

// SeedReferenceData inserts missing categories and priorities and reports how
// many rows were added. Existing rows are left untouched.
func SeedReferenceData(ctx context.Context, gw gateway.Gateway) (int, error) {
	inserted := 0

	var cats []models.CategoryModel
	if _, err := gw.Select(ctx, gateway.From(constants.TableCategories).Select("id"), &cats); err != nil {
		return 0, fmt.Errorf("failed to read categories: %w", err)
	}
	have := make(map[int]bool, len(cats))
	for _, c := range cats {
		have[c.ID] = true
	}
	for _, c := range Categories() {
		if have[c.ID] {
			continue
		}
		row := c
		if err := gw.Insert(ctx, constants.TableCategories, &row); err != nil {
			return inserted, fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		inserted++
	}

	var pris []models.PriorityModel
	if _, err := gw.Select(ctx, gateway.From(constants.TablePriorities).Select("id"), &pris); err != nil {
		return inserted, fmt.Errorf("failed to read priorities: %w", err)
	}
	have = make(map[int]bool, len(pris))
	for _, p := range pris {
		have[p.ID] = true
	}
	for _, p := range Priorities() {
		if have[p.ID] {
			continue
		}
		row := p
		if err := gw.Insert(ctx, constants.TablePriorities, &row); err != nil {
			return inserted, fmt.Errorf("failed to seed priority %q: %w", p.Name, err)
		}
		inserted++
	}

	return inserted, nil
}
