package usecases

import (
	"context"
	"strconv"
	"strings"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// Ticket creation modes reported to the Recorder.
const (
	ModeManual = "manual"
	ModeAI     = "ai"
)

// CreateTicketCommand carries the raw manual form values.
type CreateTicketCommand struct {
	CompanyID   uint
	Title       string
	Description string
	CategoryID  string
	PriorityID  string
}

type CreateTicketResult struct {
	TicketID uint
	Status   string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   Recorder
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, recorder Recorder, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.CompanyID == 0 {
		return nil, errors.NewForbiddenError("No company is linked to this session")
	}
	if utils.Blank(cmd.Title, cmd.Description, cmd.CategoryID, cmd.PriorityID) {
		return nil, errors.NewValidationError("Please fill out all fields")
	}

	categoryID, err := strconv.Atoi(strings.TrimSpace(cmd.CategoryID))
	if err != nil {
		return nil, errors.NewValidationError("Invalid category", cmd.CategoryID)
	}
	priorityID, err := strconv.Atoi(strings.TrimSpace(cmd.PriorityID))
	if err != nil {
		return nil, errors.NewValidationError("Invalid priority", cmd.PriorityID)
	}

	t, err := ticket.NewTicket(cmd.CompanyID, cmd.Title, cmd.Description, &categoryID, &priorityID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "company_id", cmd.CompanyID)
		return nil, errors.NewUpstreamError("Could not create the ticket").WithCause(err)
	}

	uc.recorder.TicketCreated(ModeManual)
	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "company_id", cmd.CompanyID, "mode", ModeManual)
	return &CreateTicketResult{TicketID: t.ID(), Status: t.Status().String()}, nil
}
