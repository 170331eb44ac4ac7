package usecases

import (
	"context"

	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	vo "github.com/EDUARX24/Tickets-AI/internal/domain/ticket/valueobjects"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
	"github.com/EDUARX24/Tickets-AI/internal/shared/utils"
)

// Classifier outcomes reported to the Recorder.
const (
	OutcomeClassified   = "classified"
	OutcomeUnclassified = "unclassified"
	OutcomeError        = "error"
)

type CreateTicketAICommand struct {
	CompanyID   uint
	Title       string
	Description string
}

// CreateTicketAIResult reports what the classifier decided. Unclassified
// lists the fields that were left empty because the suggested name is not
// in the mapping tables.
type CreateTicketAIResult struct {
	TicketID     uint
	CategoryName string
	PriorityName string
	Unclassified []string
}

func (r *CreateTicketAIResult) FullyClassified() bool {
	return len(r.Unclassified) == 0
}

type CreateTicketAIUseCase struct {
	ticketRepo ticket.TicketRepository
	classifier Classifier
	recorder   Recorder
	logger     logger.Interface
}

func NewCreateTicketAIUseCase(
	ticketRepo ticket.TicketRepository,
	classifier Classifier,
	recorder Recorder,
	logger logger.Interface,
) *CreateTicketAIUseCase {
	return &CreateTicketAIUseCase{
		ticketRepo: ticketRepo,
		classifier: classifier,
		recorder:   recorder,
		logger:     logger,
	}
}

// Execute asks the classifier for a category and priority and stores the
// ticket. Names outside the mapping tables are stored as NULL.
func (uc *CreateTicketAIUseCase) Execute(ctx context.Context, cmd CreateTicketAICommand) (*CreateTicketAIResult, error) {
	if cmd.CompanyID == 0 {
		return nil, errors.NewForbiddenError("No company is linked to this session")
	}
	if utils.Blank(cmd.Title, cmd.Description) {
		return nil, errors.NewValidationError("Please fill out all fields")
	}

	c, err := uc.classifier.Classify(ctx, cmd.Title, cmd.Description)
	if err != nil {
		uc.recorder.ClassifierCall(OutcomeError)
		uc.logger.Errorw("ticket classification failed", "error", err, "company_id", cmd.CompanyID)
		return nil, errors.NewUpstreamError("The AI service is not available. Please try again or create the ticket manually.").WithCause(err)
	}

	result := &CreateTicketAIResult{CategoryName: c.CategoryName, PriorityName: c.PriorityName}

	categoryID := vo.CategoryIDByName(c.CategoryName)
	if categoryID == nil {
		result.Unclassified = append(result.Unclassified, "category")
		uc.logger.Warnw("classifier returned an unknown category", "category", c.CategoryName)
	}
	priorityID := vo.PriorityIDByName(c.PriorityName)
	if priorityID == nil {
		result.Unclassified = append(result.Unclassified, "priority")
		uc.logger.Warnw("classifier returned an unknown priority", "priority", c.PriorityName)
	}

	if result.FullyClassified() {
		uc.recorder.ClassifierCall(OutcomeClassified)
	} else {
		uc.recorder.ClassifierCall(OutcomeUnclassified)
	}

	t, err := ticket.NewTicket(cmd.CompanyID, cmd.Title, cmd.Description, categoryID, priorityID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err, "company_id", cmd.CompanyID)
		return nil, errors.NewUpstreamError("Could not create the ticket").WithCause(err)
	}

	uc.recorder.TicketCreated(ModeAI)
	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "company_id", cmd.CompanyID, "mode", ModeAI,
		"category", c.CategoryName, "priority", c.PriorityName)

	result.TicketID = t.ID()
	return result, nil
}
