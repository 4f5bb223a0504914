package intake

import (
	"context"
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/simpliexteriors/site-api/internal/crm"
	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/internal/notify"
	"github.com/simpliexteriors/site-api/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	calls   atomic.Int64
	outcome notify.Outcome
	leadID  string
	ctx     context.Context
}

func (m *mockNotifier) NotifyLead(ctx context.Context, _ *leads.Submission, leadID string) notify.Outcome {
	m.calls.Add(1)
	m.leadID = leadID
	m.ctx = ctx
	return m.outcome
}

func (m *mockNotifier) NotifyQuickQuote(ctx context.Context, _ *leads.QuickQuote, leadID string) notify.Outcome {
	m.calls.Add(1)
	m.leadID = leadID
	m.ctx = ctx
	return m.outcome
}

type mockCRM struct {
	calls  atomic.Int64
	result crm.Result
	got    *leads.Submission
	ctx    context.Context
}

func (m *mockCRM) Submit(ctx context.Context, sub *leads.Submission) crm.Result {
	m.calls.Add(1)
	m.got = sub
	m.ctx = ctx
	return m.result
}

func okOutcome() notify.Outcome {
	return notify.Outcome{
		Owner:    notify.Result{Success: true},
		Customer: notify.Result{Success: true},
	}
}

func validContact() *leads.Submission {
	return &leads.Submission{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Address:    "123 Main St.",
		City:       "St. George",
		State:      "UT",
		PostalCode: "84770",
		Phone:      "435-922-4340",
		Service:    leads.ServiceRoofing,
	}
}

var leadIDRe = regexp.MustCompile(`^LEAD-\d+-[A-Z0-9]{6}$`)

func TestSubmitContact_Success(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true, ContactID: "ghl-1"}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	result, err := svc.SubmitContact(context.Background(), validContact())
	require.NoError(t, err)

	assert.Regexp(t, leadIDRe, result.LeadID)
	assert.Equal(t, result.LeadID, notifier.leadID, "both channels see the same lead id")
	assert.Equal(t, int64(1), notifier.calls.Load())
	assert.Equal(t, int64(1), crmMock.calls.Load())
	assert.True(t, result.Emails.Owner.Success)
	assert.Equal(t, "ghl-1", result.CRM.ContactID)
	assert.Equal(t, "Contact Form", crmMock.got.Source, "default source applied before fan-out")
	assert.Equal(t, "(435) 922-4340", crmMock.got.Phone, "channels receive the normalized submission")
}

func TestSubmitContact_ValidationFailureSkipsFanOut(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	sub := validContact()
	sub.FirstName = ""
	_, err := svc.SubmitContact(context.Background(), sub)

	require.Error(t, err)
	assert.Zero(t, notifier.calls.Load(), "notifier must not run on invalid input")
	assert.Zero(t, crmMock.calls.Load(), "CRM must not run on invalid input")
}

func TestSubmitContact_ChannelFailuresDoNotFailSubmission(t *testing.T) {
	notifier := &mockNotifier{outcome: notify.Outcome{
		Owner:    notify.Result{Success: false, Error: "smtp down"},
		Customer: notify.Result{Success: false, Error: "smtp down"},
	}}
	crmMock := &mockCRM{result: crm.Result{Success: false, Error: "webhook 502"}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	result, err := svc.SubmitContact(context.Background(), validContact())
	require.NoError(t, err, "downstream failures never surface as errors")
	assert.False(t, result.Emails.Owner.Success)
	assert.False(t, result.CRM.Success)
	assert.NotEmpty(t, result.LeadID)
}

type ctxKey string

func TestSubmitContact_ContextReachesBothChannels(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	ctx := context.WithValue(context.Background(), ctxKey("request"), "r-42")
	_, err := svc.SubmitContact(ctx, validContact())
	require.NoError(t, err)

	// The fan-out wraps the request context; values set upstream must
	// still be visible to each channel.
	assert.Equal(t, "r-42", notifier.ctx.Value(ctxKey("request")))
	assert.Equal(t, "r-42", crmMock.ctx.Value(ctxKey("request")))
}

func TestSubmitContact_KeepsExplicitSource(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	sub := validContact()
	sub.Source = "Roofing Page"
	_, err := svc.SubmitContact(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "Roofing Page", crmMock.got.Source)
}

func TestSubmitQuickQuote_Success(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	q := &leads.QuickQuote{Name: "John Doe", Phone: "8015551234", Service: leads.ServiceGutters}
	result, err := svc.SubmitQuickQuote(context.Background(), q)
	require.NoError(t, err)

	assert.Regexp(t, leadIDRe, result.LeadID)
	assert.Equal(t, int64(1), notifier.calls.Load())
	assert.Equal(t, int64(1), crmMock.calls.Load())
	assert.Equal(t, "website_quick_quote", crmMock.got.Source)
	assert.Equal(t, "John", crmMock.got.FirstName)
}

func TestSubmitQuickQuote_MissingRequiredFields(t *testing.T) {
	notifier := &mockNotifier{outcome: okOutcome()}
	crmMock := &mockCRM{result: crm.Result{Success: true}}
	svc := NewService(notifier, crmMock, logging.New("error"), nil)

	_, err := svc.SubmitQuickQuote(context.Background(), &leads.QuickQuote{Phone: "8015551234", Service: leads.ServiceRoofing})
	require.Error(t, err)
	assert.Zero(t, notifier.calls.Load())
	assert.Zero(t, crmMock.calls.Load())
}
