// Package classifier calls the external ticket classification service.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/EDUARX24/Tickets-AI/internal/application/ticket/usecases"
	"github.com/EDUARX24/Tickets-AI/internal/shared/config"
	"github.com/EDUARX24/Tickets-AI/internal/shared/logger"
)

const (
	predictPath = "/api/predict-ticket"

	maxResponseSize = 64 << 10
	maxErrorBody    = 512
)

// Prediction is the classifier's answer for one ticket.
type Prediction struct {
	CategoryName  string      `json:"category_name"`
	PriorityName  string      `json:"priority_name"`
	PriorityValue json.Number `json:"priority_value"`
}

type predictRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("classifier returned status %d: %s", e.StatusCode, e.Body)
}

var _ usecases.Classifier = (*Client)(nil)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.ClassifierConfig, log logger.Interface) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     log,
	}
}

// Predict posts the ticket text and returns the suggested category and
// priority names.
func (c *Client) Predict(ctx context.Context, title, description string) (*Prediction, error) {
	body, err := json.Marshal(predictRequest{Title: title, Description: description})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	var prediction Prediction
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	c.logger.Debugw("ticket classified",
		"category", prediction.CategoryName,
		"priority", prediction.PriorityName,
	)
	return &prediction, nil
}

// Classify adapts Predict to the ticket use cases.
func (c *Client) Classify(ctx context.Context, title, description string) (*usecases.Classification, error) {
	p, err := c.Predict(ctx, title, description)
	if err != nil {
		return nil, err
	}
	return &usecases.Classification{CategoryName: p.CategoryName, PriorityName: p.PriorityName}, nil
}
