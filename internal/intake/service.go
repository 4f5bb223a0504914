// Package intake orchestrates lead submissions: validate, assign a
// lead id, then fan out to the email and CRM channels concurrently.
// The submitted lead data is the valuable artifact; once validation
// passes the caller always gets a success, with per-channel outcome
// flags for anything downstream that failed.
package intake

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/simpliexteriors/site-api/internal/crm"
	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/internal/notify"
	"github.com/simpliexteriors/site-api/internal/observability/metrics"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

var fanOutTracer = otel.Tracer("simpli.internal.intake.fanout")

// Notifier is the email channel of the fan-out.
type Notifier interface {
	NotifyLead(ctx context.Context, sub *leads.Submission, leadID string) notify.Outcome
	NotifyQuickQuote(ctx context.Context, q *leads.QuickQuote, leadID string) notify.Outcome
}

// CRMSubmitter is the CRM channel of the fan-out.
type CRMSubmitter interface {
	Submit(ctx context.Context, sub *leads.Submission) crm.Result
}

// Result aggregates the per-channel outcomes for one lead.
type Result struct {
	LeadID string
	Emails notify.Outcome
	CRM    crm.Result
}

// Service is the lead intake orchestrator.
type Service struct {
	notifier Notifier
	crm      CRMSubmitter
	logger   *logging.Logger
	metrics  *metrics.LeadMetrics
}

// NewService creates a lead intake orchestrator.
func NewService(notifier Notifier, crmSubmitter CRMSubmitter, logger *logging.Logger, m *metrics.LeadMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{notifier: notifier, crm: crmSubmitter, logger: logger, metrics: m}
}

// SubmitContact processes a contact-form lead. A returned error is
// always a validation failure; channel failures are reported inside
// the Result, never as errors.
func (s *Service) SubmitContact(ctx context.Context, sub *leads.Submission) (*Result, error) {
	if err := sub.Validate(); err != nil {
		s.metrics.ObserveSubmission("contact", "invalid")
		return nil, err
	}
	if sub.Source == "" {
		sub.Source = "Contact Form"
	}
	s.metrics.ObserveSubmission("contact", "received")

	result := &Result{LeadID: leads.NewLeadID()}
	s.fanOut(ctx, result, func(ctx context.Context) notify.Outcome {
		return s.notifier.NotifyLead(ctx, sub, result.LeadID)
	}, sub)

	s.logResult(sub, result)
	return result, nil
}

// SubmitQuickQuote processes a quick-quote lead. The owner alert is
// always attempted; the CRM receives the quote reshaped as a
// standard submission.
func (s *Service) SubmitQuickQuote(ctx context.Context, q *leads.QuickQuote) (*Result, error) {
	if err := q.Validate(); err != nil {
		s.metrics.ObserveSubmission("quick_quote", "invalid")
		return nil, err
	}
	s.metrics.ObserveSubmission("quick_quote", "received")

	sub := q.Contact()
	result := &Result{LeadID: leads.NewLeadID()}
	s.fanOut(ctx, result, func(ctx context.Context) notify.Outcome {
		return s.notifier.NotifyQuickQuote(ctx, q, result.LeadID)
	}, sub)

	s.logResult(sub, result)
	return result, nil
}

// fanOut runs the email and CRM channels concurrently and waits for
// both to settle. Neither cancels the other; each channel reports
// its own failures in its result.
func (s *Service) fanOut(ctx context.Context, result *Result, sendEmails func(context.Context) notify.Outcome, sub *leads.Submission) {
	ctx, span := fanOutTracer.Start(ctx, "intake.fanout")
	defer span.End()
	span.SetAttributes(
		attribute.String("simpli.lead_id", result.LeadID),
		attribute.String("simpli.source", sub.Source),
		attribute.String("simpli.service", string(sub.Service)),
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Emails = sendEmails(ctx)
	}()
	go func() {
		defer wg.Done()
		result.CRM = s.crm.Submit(ctx, sub)
	}()
	wg.Wait()
}

func (s *Service) logResult(sub *leads.Submission, result *Result) {
	if !result.CRM.Success {
		s.logger.Error("GHL submission failed", "lead_id", result.LeadID, "error", result.CRM.Error)
	}
	if !result.Emails.Owner.Success {
		s.logger.Warn("owner notification not sent", "lead_id", result.LeadID, "error", result.Emails.Owner.Error)
	}
	s.logger.Info("lead captured",
		"lead_id", result.LeadID,
		"source", sub.Source,
		"service", sub.Service,
		"notification_sent", result.Emails.Owner.Success,
		"confirmation_sent", result.Emails.Customer.Success,
		"ghl_submitted", result.CRM.Success,
	)
}
