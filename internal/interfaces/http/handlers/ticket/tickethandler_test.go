package ticket

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/dto"
	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/domain/ticket"
	"github.com/EDUARX24/Tickets-AI/internal/interfaces/http/handlers/testutil"
	"github.com/EDUARX24/Tickets-AI/internal/shared/errors"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

type mockListUC struct {
	result *dto.TicketPageDTO
	err    error
	got    usecases.ListCompanyTicketsQuery
}

func (m *mockListUC) Execute(ctx context.Context, query usecases.ListCompanyTicketsQuery) (*dto.TicketPageDTO, error) {
	m.got = query
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.TicketDetailDTO
	err    error
	got    usecases.GetCompanyTicketQuery
	called bool
}

func (m *mockGetUC) Execute(ctx context.Context, query usecases.GetCompanyTicketQuery) (*dto.TicketDetailDTO, error) {
	m.called = true
	m.got = query
	return m.result, m.err
}

type mockCreateUC struct {
	result *usecases.CreateTicketResult
	err    error
	got    usecases.CreateTicketCommand
}

func (m *mockCreateUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockCreateAIUC struct {
	result *usecases.CreateTicketAIResult
	err    error
	got    usecases.CreateTicketAICommand
}

func (m *mockCreateAIUC) Execute(ctx context.Context, cmd usecases.CreateTicketAICommand) (*usecases.CreateTicketAIResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockReferenceUC struct {
	result *dto.ReferenceDataDTO
}

func (m *mockReferenceUC) Execute(ctx context.Context) *dto.ReferenceDataDTO {
	return m.result
}

type fixture struct {
	list      *mockListUC
	get       *mockGetUC
	create    *mockCreateUC
	createAI  *mockCreateAIUC
	reference *mockReferenceUC
}

func newHandlerForTest() (*TicketHandler, *fixture) {
	f := &fixture{
		list:      &mockListUC{result: &dto.TicketPageDTO{Page: 1, TotalPages: 1}},
		get:       &mockGetUC{},
		create:    &mockCreateUC{},
		createAI:  &mockCreateAIUC{},
		reference: &mockReferenceUC{result: &dto.ReferenceDataDTO{}},
	}
	h := NewTicketHandler(f.list, f.get, f.create, f.createAI, f.reference, logger.NewNop())
	return h, f
}

func TestTicketHandler_List(t *testing.T) {
	h, f := newHandlerForTest()
	f.list.result = &dto.TicketPageDTO{
		Tickets:    []dto.TicketRowDTO{{ID: 5, Title: "Mail bounce"}},
		Page:       2,
		TotalPages: 2,
		Total:      11,
	}
	c, w := testutil.NewTestContext(http.MethodGet, ListPath+"?page=2")
	testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListCompanyTicketsQuery{CompanyID: 11, Page: 2}, f.list.got)
	assert.Contains(t, w.Body.String(), "Mail bounce")
}

func TestTicketHandler_Show(t *testing.T) {
	t.Run("renders the ticket of the caller's company", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.get.result = &dto.TicketDetailDTO{
			TicketRowDTO:    dto.TicketRowDTO{ID: 5, Title: "Mail bounce"},
			DescriptionHTML: "<p><strong>urgent</strong></p>",
		}
		c, w := testutil.NewTestContext(http.MethodGet, ListPath+"/5")
		testutil.SetURLParam(c, "id", "5")
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.Show(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.GetCompanyTicketQuery{TicketID: 5, CompanyID: 11}, f.get.got)
		assert.Contains(t, w.Body.String(), "<strong>urgent</strong>")
	})

	t.Run("other tenant's ticket is not found", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.get.err = errors.NewNotFoundError("Ticket not found")
		c, w := testutil.NewTestContext(http.MethodGet, ListPath+"/9")
		testutil.SetURLParam(c, "id", "9")
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.Show(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "url="+ListPath)
	})

	t.Run("malformed id never reaches the use case", func(t *testing.T) {
		h, f := newHandlerForTest()
		c, w := testutil.NewTestContext(http.MethodGet, ListPath+"/abc")
		testutil.SetURLParam(c, "id", "abc")
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.Show(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, f.get.called)
	})
}

func TestTicketHandler_ManualForm(t *testing.T) {
	h, f := newHandlerForTest()
	f.reference.result = &dto.ReferenceDataDTO{
		Categories: []ticket.Category{{ID: 1, Name: "Hardware"}},
		Priorities: []ticket.Priority{{ID: 3, Name: "High"}},
	}
	c, w := testutil.NewTestContext(http.MethodGet, ManualPath)
	testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

	h.ManualForm(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="1">Hardware</option>`)
	assert.Contains(t, w.Body.String(), `<option value="3">High</option>`)
}

func TestTicketHandler_CreateManual(t *testing.T) {
	form := url.Values{
		"title":       {"Printer jammed"},
		"description": {"Tray 2 is stuck"},
		"category_id": {"1"},
		"priority_id": {"2"},
	}

	t.Run("success", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.create.result = &usecases.CreateTicketResult{TicketID: 21, Status: "open"}
		c, w := testutil.NewFormContext(http.MethodPost, ManualPath, form)
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateManual(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ticket #21 was created.")
		assert.Equal(t, usecases.CreateTicketCommand{
			CompanyID:   11,
			Title:       "Printer jammed",
			Description: "Tray 2 is stuck",
			CategoryID:  "1",
			PriorityID:  "2",
		}, f.create.got)
	})

	t.Run("use case rejection returns to the form", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.create.err = errors.NewValidationError("Invalid category")
		c, w := testutil.NewFormContext(http.MethodPost, ManualPath, form)
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateManual(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category")
		assert.Contains(t, w.Body.String(), "url="+ManualPath)
	})

	t.Run("invalid form never reaches the use case", func(t *testing.T) {
		tests := []struct {
			name  string
			field string
			value string
		}{
			{name: "missing title", field: "title", value: ""},
			{name: "missing description", field: "description", value: ""},
			{name: "non numeric category", field: "category_id", value: "network"},
			{name: "missing priority", field: "priority_id", value: ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h, f := newHandlerForTest()
				bad := url.Values{}
				for k, v := range form {
					bad[k] = v
				}
				bad.Set(tt.field, tt.value)
				c, w := testutil.NewFormContext(http.MethodPost, ManualPath, bad)
				testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

				h.CreateManual(c)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), "Please fill out all fields")
				assert.Contains(t, w.Body.String(), "url="+ManualPath)
				assert.Zero(t, f.create.got)
			})
		}
	})
}

func TestTicketHandler_CreateAI(t *testing.T) {
	form := url.Values{"title": {"VPN drops"}, "description": {"Every hour"}}

	t.Run("fully classified", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.createAI.result = &usecases.CreateTicketAIResult{TicketID: 30, CategoryName: "Network", PriorityName: "High"}
		c, w := testutil.NewFormContext(http.MethodPost, AIPath, form)
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateAI(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Category: Network. Priority: High.")
		assert.NotContains(t, body, "Could not classify")
		assert.Equal(t, uint(11), f.createAI.got.CompanyID)
	})

	t.Run("unknown names are flagged", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.createAI.result = &usecases.CreateTicketAIResult{
			TicketID:     31,
			CategoryName: "Quantum",
			Unclassified: []string{"category", "priority"},
		}
		c, w := testutil.NewFormContext(http.MethodPost, AIPath, form)
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateAI(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Could not classify: category, priority.")
		assert.Contains(t, w.Body.String(), "Priority: -.")
	})

	t.Run("classifier unavailable", func(t *testing.T) {
		h, f := newHandlerForTest()
		f.createAI.err = errors.NewUpstreamError("The classification service is unavailable")
		c, w := testutil.NewFormContext(http.MethodPost, AIPath, form)
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateAI(c)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "Service unavailable")
		assert.Contains(t, w.Body.String(), "url="+AIPath)
	})

	t.Run("blank description is rejected before classification", func(t *testing.T) {
		h, f := newHandlerForTest()
		c, w := testutil.NewFormContext(http.MethodPost, AIPath, url.Values{"title": {"VPN drops"}})
		testutil.SetSession(c, testutil.CompanyAdminSession(3, 11))

		h.CreateAI(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "url="+AIPath)
		assert.Zero(t, f.createAI.got)
	})
}
