package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/internal/observability/metrics"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

var sendTracer = otel.Tracer("simpli.internal.crm.send")

// Result is the outcome of one webhook submission.
type Result struct {
	Success   bool   `json:"success"`
	ContactID string `json:"contactId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Client posts contacts to a GHL inbound webhook. An empty webhook
// URL disables the integration: Submit becomes a successful no-op so
// a missing CRM never fails a lead.
type Client struct {
	webhookURL string
	apiKey     string
	httpClient *http.Client
	logger     *logging.Logger
	metrics    *metrics.LeadMetrics
}

// ClientConfig holds CRM webhook settings.
type ClientConfig struct {
	WebhookURL string
	APIKey     string
	Timeout    time.Duration
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics attaches submission counters.
func WithMetrics(m *metrics.LeadMetrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a GHL webhook client.
func NewClient(cfg ClientConfig, logger *logging.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		webhookURL: cfg.WebhookURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether a webhook URL is set.
func (c *Client) Configured() bool {
	return c.webhookURL != ""
}

// Submit prepares and sends a lead to the CRM. Failures are reported
// in the Result, never as an error.
func (c *Client) Submit(ctx context.Context, sub *leads.Submission) Result {
	return c.Send(ctx, PrepareContact(sub))
}

// Send posts an already-prepared contact to the webhook.
func (c *Client) Send(ctx context.Context, contact Contact) Result {
	ctx, span := sendTracer.Start(ctx, "crm.webhook.send")
	defer span.End()
	span.SetAttributes(
		attribute.String("simpli.service_needed", contact.ServiceNeeded),
		attribute.StringSlice("simpli.tags", contact.Tags),
	)

	if c.webhookURL == "" {
		c.logger.Warn("GHL webhook URL not configured, skipping CRM submission")
		c.metrics.ObserveCRM("skipped")
		return Result{Success: true}
	}

	body, err := json.Marshal(contact)
	if err != nil {
		c.metrics.ObserveCRM("error")
		return Result{Success: false, Error: fmt.Sprintf("crm: marshal contact: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		c.metrics.ObserveCRM("error")
		return Result{Success: false, Error: fmt.Sprintf("crm: create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("GHL webhook request failed", "error", err)
		span.RecordError(err)
		c.metrics.ObserveCRM("error")
		return Result{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("GHL webhook returned error status", "status", resp.StatusCode)
		span.RecordError(fmt.Errorf("crm: webhook status %d", resp.StatusCode))
		c.metrics.ObserveCRM("error")
		return Result{
			Success: false,
			Error:   fmt.Sprintf("GHL webhook returned %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	// The webhook response body is optional; capture a contact id
	// when one is present.
	var payload struct {
		ContactID string `json:"contactId"`
		ID        string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	contactID := payload.ContactID
	if contactID == "" {
		contactID = payload.ID
	}

	c.logger.Info("lead submitted to GHL", "contact_id", contactID)
	c.metrics.ObserveCRM("success")
	return Result{Success: true, ContactID: contactID}
}
