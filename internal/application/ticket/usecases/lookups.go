package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/domain/company"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

// LookupSet selects which reference data a screen needs.
type LookupSet struct {
	Categories bool
	Priorities bool
	Companies  bool
}

// LookupLoader resolves the reference data for a batch of tickets with one
// query per table. Failed lookups are logged and leave the map empty so rows
// fall back to neutral labels.
type LookupLoader struct {
	refRepo     ticket.ReferenceRepository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewLookupLoader(refRepo ticket.ReferenceRepository, companyRepo company.Repository, logger logger.Interface) *LookupLoader {
	return &LookupLoader{refRepo: refRepo, companyRepo: companyRepo, logger: logger}
}

func (l *LookupLoader) Load(ctx context.Context, tickets []*ticket.Ticket, want LookupSet) dto.Lookups {
	var lk dto.Lookups
	if len(tickets) == 0 {
		return lk
	}

	if want.Categories {
		if ids := dto.CategoryIDs(tickets); len(ids) > 0 {
			m, err := l.refRepo.CategoriesByIDs(ctx, ids)
			if err != nil {
				l.logger.Warnw("failed to load categories", "error", err, "ids", ids)
			}
			lk.Categories = m
		}
	}

	if want.Priorities {
		if ids := dto.PriorityIDs(tickets); len(ids) > 0 {
			m, err := l.refRepo.PrioritiesByIDs(ctx, ids)
			if err != nil {
				l.logger.Warnw("failed to load priorities", "error", err, "ids", ids)
			}
			lk.Priorities = m
		}
	}

	if want.Companies && l.companyRepo != nil {
		ids := dto.CompanyIDs(tickets)
		companies, err := l.companyRepo.FindByIDs(ctx, ids)
		if err != nil {
			l.logger.Warnw("failed to load companies", "error", err, "ids", ids)
		}
		lk.Companies = make(map[uint]string, len(companies))
		for _, c := range companies {
			lk.Companies[c.ID()] = c.DisplayName()
		}
	}

	return lk
}
