package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/internal/observability/metrics"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

var emailTracer = otel.Tracer("simpli.internal.notify.email")

// Result is the outcome of one email send.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Outcome pairs the owner-alert and customer-confirmation results for
// a single lead.
type Outcome struct {
	Owner    Result `json:"owner"`
	Customer Result `json:"customer"`
}

// Config holds dispatcher settings.
type Config struct {
	BusinessEmail string
	BusinessPhone string
	SiteURL       string
	SendTimeout   time.Duration
}

// Service composes and sends the owner and customer emails for a
// lead. Send failures are absorbed into the per-recipient Result and
// never returned as errors; losing an email must not fail the lead.
type Service struct {
	email   EmailSender
	cfg     Config
	logger  *logging.Logger
	metrics *metrics.LeadMetrics
}

// NewService creates a notification dispatcher. A nil sender disables
// the email channel: every Result reports a configuration failure and
// no network call is made.
func NewService(email EmailSender, cfg Config, logger *logging.Logger, m *metrics.LeadMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 10 * time.Second
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = "https://simpliexteriors.com"
	}
	return &Service{email: email, cfg: cfg, logger: logger, metrics: m}
}

var notConfigured = Result{
	Success: false,
	Message: "Email service not configured",
	Error:   "Missing API key",
}

// NotifyLead sends the owner alert and customer confirmation for a
// contact-form submission. Both sends are issued concurrently and
// both always run to completion; one failing does not abort the other.
func (s *Service) NotifyLead(ctx context.Context, sub *leads.Submission, leadID string) Outcome {
	if s.email == nil {
		s.logger.Warn("email channel disabled, lead notifications skipped", "lead_id", leadID)
		s.metrics.ObserveEmail("owner", "skipped")
		s.metrics.ObserveEmail("customer", "skipped")
		return Outcome{Owner: notConfigured, Customer: notConfigured}
	}

	data := s.emailData(sub, leadID, "")

	var out Outcome
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		out.Owner = s.sendOwnerAlert(ctx, data, "Owner notification sent successfully", "Failed to send notification")
	}()
	go func() {
		defer wg.Done()
		out.Customer = s.sendCustomerConfirmation(ctx, data)
	}()
	wg.Wait()
	return out
}

// NotifyQuickQuote sends the owner alert for a quick-quote lead and,
// when the caller left an email address, a customer confirmation.
func (s *Service) NotifyQuickQuote(ctx context.Context, q *leads.QuickQuote, leadID string) Outcome {
	if s.email == nil {
		s.logger.Warn("email channel disabled, quick-quote notification skipped", "lead_id", leadID)
		s.metrics.ObserveEmail("owner", "skipped")
		s.metrics.ObserveEmail("customer", "skipped")
		return Outcome{Owner: notConfigured, Customer: notConfigured}
	}

	data := s.emailData(q.Contact(), leadID, q.Timeframe)

	var out Outcome
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		subject := fmt.Sprintf("New Quick Quote: %s - %s", data.ServiceLabel, q.Name)
		out.Owner = s.sendOwner(ctx, data, subject, "Owner notification sent successfully", "Failed to send notification")
	}()
	if q.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out.Customer = s.sendCustomerConfirmation(ctx, data)
		}()
	} else {
		out.Customer = Result{Success: false, Message: "No customer email provided"}
	}
	wg.Wait()
	return out
}

func (s *Service) emailData(sub *leads.Submission, leadID, timeframe string) emailData {
	return emailData{
		Lead:          sub,
		LeadID:        leadID,
		PhoneDigits:   digitsOnly(sub.Phone),
		ServiceLabel:  serviceLabel(sub.Service),
		SubmittedAt:   submittedAt(time.Now()),
		Timeframe:     timeframe,
		BusinessPhone: s.cfg.BusinessPhone,
		SiteURL:       s.cfg.SiteURL,
	}
}

func (s *Service) sendOwnerAlert(ctx context.Context, data emailData, okMsg, failMsg string) Result {
	subject := fmt.Sprintf("New Lead: %s %s - %s", data.Lead.FirstName, data.Lead.LastName, data.ServiceLabel)
	return s.sendOwner(ctx, data, subject, okMsg, failMsg)
}

func (s *Service) sendOwner(ctx context.Context, data emailData, subject, okMsg, failMsg string) Result {
	ctx, span := emailTracer.Start(ctx, "notify.email.owner")
	defer span.End()
	span.SetAttributes(attribute.String("simpli.lead_id", data.LeadID))

	html, err := renderTemplate(ownerTemplate, data)
	if err != nil {
		s.logger.Error("failed to render owner template", "error", err, "lead_id", data.LeadID)
		span.RecordError(err)
		s.metrics.ObserveEmail("owner", "error")
		return Result{Success: false, Message: failMsg, Error: err.Error()}
	}

	msg := EmailMessage{
		To:      s.cfg.BusinessEmail,
		Subject: subject,
		Body:    ownerTextSummary(data),
		HTML:    html,
		ReplyTo: data.Lead.Email,
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("owner notification failed", "error", err, "lead_id", data.LeadID)
		span.RecordError(err)
		s.metrics.ObserveEmail("owner", "error")
		return Result{Success: false, Message: failMsg, Error: err.Error()}
	}
	s.metrics.ObserveEmail("owner", "sent")
	return Result{Success: true, Message: okMsg}
}

func (s *Service) sendCustomerConfirmation(ctx context.Context, data emailData) Result {
	ctx, span := emailTracer.Start(ctx, "notify.email.customer")
	defer span.End()
	span.SetAttributes(attribute.String("simpli.lead_id", data.LeadID))

	html, err := renderTemplate(customerTemplate, data)
	if err != nil {
		s.logger.Error("failed to render customer template", "error", err, "lead_id", data.LeadID)
		span.RecordError(err)
		s.metrics.ObserveEmail("customer", "error")
		return Result{Success: false, Message: "Failed to send confirmation", Error: err.Error()}
	}

	msg := EmailMessage{
		To:      data.Lead.Email,
		ToName:  fmt.Sprintf("%s %s", data.Lead.FirstName, data.Lead.LastName),
		Subject: "Thank You for Contacting Simpli Roofing & Exteriors",
		Body:    customerTextSummary(data),
		HTML:    html,
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("customer confirmation failed", "error", err, "lead_id", data.LeadID)
		span.RecordError(err)
		s.metrics.ObserveEmail("customer", "error")
		return Result{Success: false, Message: "Failed to send confirmation", Error: err.Error()}
	}
	s.metrics.ObserveEmail("customer", "sent")
	return Result{Success: true, Message: "Confirmation email sent successfully"}
}

func ownerTextSummary(data emailData) string {
	source := data.Lead.Source
	if source == "" {
		source = "Website"
	}
	return fmt.Sprintf(`New lead from the website

Lead ID: %s
Name: %s %s
Email: %s
Phone: %s
Service: %s
Source: %s
Submitted: %s

Please follow up with this lead as soon as possible.`,
		data.LeadID, data.Lead.FirstName, data.Lead.LastName, data.Lead.Email,
		data.Lead.Phone, data.ServiceLabel, source, data.SubmittedAt)
}

func customerTextSummary(data emailData) string {
	return fmt.Sprintf(`Dear %s %s,

Thank you for reaching out to Simpli Roofing & Exteriors! We've received your inquiry and will contact you within 1 business day.

If you need immediate assistance, please call us at %s.

Best regards,
The Simpli Roofing & Exteriors Team`,
		data.Lead.FirstName, data.Lead.LastName, data.BusinessPhone)
}

// submittedAt formats a timestamp in the business's local time zone.
func submittedAt(t time.Time) string {
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format("January 2, 2006 at 3:04 PM")
}
