package usecases

import (
	"context"
	"html/template"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
)

// Classification is the category and priority suggested for a ticket.
type Classification struct {
	CategoryName string
	PriorityName string
}

// Classifier suggests a category and priority for new ticket text.
type Classifier interface {
	Classify(ctx context.Context, title, description string) (*Classification, error)
}

// DescriptionRenderer turns ticket text into safe HTML.
type DescriptionRenderer interface {
	Render(text string) (template.HTML, error)
}

// Recorder receives ticket creation events for metrics.
type Recorder interface {
	TicketCreated(mode string)
	ClassifierCall(outcome string)
}

type ListCompanyTicketsExecutor interface {
	Execute(ctx context.Context, query ListCompanyTicketsQuery) (*dto.TicketPageDTO, error)
}

type GetCompanyTicketExecutor interface {
	Execute(ctx context.Context, query GetCompanyTicketQuery) (*dto.TicketDetailDTO, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketAIExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketAICommand) (*CreateTicketAIResult, error)
}

type GetReferenceDataExecutor interface {
	Execute(ctx context.Context) *dto.ReferenceDataDTO
}
