// Package planning provides the HTTP client for the remote planning service.
// The client is a structural pass-through: it posts trip parameters or
// refinement text and decodes the returned Plan without interpreting it.
// There are no retries and no caching; each call is a single round trip.
package planning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"concierge/internal/errors"
	"concierge/internal/logging"
	"concierge/internal/plan"
)

// maxResponseSize caps the response body read to keep a misbehaving service
// from exhausting memory.
const maxResponseSize = 4 * 1024 * 1024 // 4MB

// DefaultTimeout bounds a single planning round trip when no custom
// http.Client is supplied. Plan generation is slow on the service side.
const DefaultTimeout = 60 * time.Second

// PlanRequest carries the inputs for a new plan.
type PlanRequest struct {
	UserID      string  `json:"user_id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Travelers   int     `json:"travelers,omitempty"`
}

// RefineRequest carries a free-text adjustment to the user's current plan.
// The service resolves the plan being refined from the user id.
type RefineRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// errorBody is the service's error payload shape.
type errorBody struct {
	Detail string `json:"detail"`
}

// Service is the planning-service contract the controller depends on.
// Satisfied by *Client; tests substitute their own implementation.
type Service interface {
	CreatePlan(ctx context.Context, req PlanRequest) (*plan.Plan, error)
	RefinePlan(ctx context.Context, req RefineRequest) (*plan.Plan, error)
}

// Client talks to the planning service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// NewClient creates a client for the planning service at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreatePlan requests a fresh plan for the given trip parameters.
func (c *Client) CreatePlan(ctx context.Context, req PlanRequest) (*plan.Plan, error) {
	return c.postPlan(ctx, "/api/plan", req)
}

// RefinePlan sends a refinement instruction for the user's current plan and
// returns the adjusted plan.
func (c *Client) RefinePlan(ctx context.Context, req RefineRequest) (*plan.Plan, error) {
	return c.postPlan(ctx, "/api/refine", req)
}

// Health probes the service root. The service answers {"ok": true} when it
// is up; any non-2xx or transport failure reports as an error.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return errors.NewTransportError("building health request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewTransportError("health probe failed", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewTransportError("service unhealthy", nil).WithStatusCode(resp.StatusCode)
	}
	return nil
}

// postPlan performs one POST round trip and decodes the Plan response.
func (c *Client) postPlan(ctx context.Context, path string, payload any) (*plan.Plan, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewTransportError("encoding request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewTransportError("building request", err)
	}

	traceID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Trace-Id", traceID)

	log := c.logger.WithTrace(traceID)
	log.Debug("planning request", "path", path)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("planning request failed", "path", path, "error", err)
		return nil, errors.NewTransportError(fmt.Sprintf("POST %s", path), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		log.Error("reading response failed", "path", path, "error", err)
		return nil, errors.NewTransportError("reading response", err).WithStatusCode(resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("planning request rejected",
			"path", path, "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, serviceError(resp.StatusCode, data)
	}

	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error("decoding plan failed", "path", path, "error", err)
		return nil, errors.NewTransportError("decoding plan", err).WithStatusCode(resp.StatusCode)
	}

	log.Info("planning request complete",
		"path", path, "status", resp.StatusCode, "elapsed", time.Since(start))
	return &p, nil
}

// serviceError maps a non-2xx response to ServiceError when the body carries
// a usable detail string, TransportError otherwise.
func serviceError(statusCode int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Detail != "" {
		return errors.NewServiceError(statusCode, eb.Detail)
	}
	return errors.NewTransportError("planning service rejected the request", nil).
		WithStatusCode(statusCode)
}
