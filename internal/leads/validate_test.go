package leads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() *Submission {
	return &Submission{
		FirstName:  "Jane",
		LastName:   "O'Brien-Smith",
		Email:      "jane@example.com",
		Address:    "123 Main St.",
		City:       "St. George",
		State:      "UT",
		PostalCode: "84770",
		Phone:      "435-922-4340",
		Service:    ServiceRoofing,
		Message:    "Hail damage on the north slope",
	}
}

func TestSubmissionValidate_OK(t *testing.T) {
	s := validSubmission()
	require.NoError(t, s.Validate())
	assert.Equal(t, "(435) 922-4340", s.Phone)
}

func TestSubmissionValidate_FirstFailureWins(t *testing.T) {
	s := validSubmission()
	s.FirstName = "J"
	s.Email = "not-an-email"
	err := s.Validate()
	require.Error(t, err)
	assert.Equal(t, "First name must be at least 2 characters", err.Error())
}

func TestSubmissionValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		message string
	}{
		{"name digits", func(s *Submission) { s.FirstName = "J4ne" }, "First name can only contain letters, spaces, hyphens, and apostrophes"},
		{"last name long", func(s *Submission) { s.LastName = strings.Repeat("a", 51) }, "Last name must be less than 50 characters"},
		{"bad email", func(s *Submission) { s.Email = "jane@@example.com" }, "Please enter a valid email address"},
		{"email long", func(s *Submission) { s.Email = strings.Repeat("a", 95) + "@example.com" }, "Email must be less than 100 characters"},
		{"short address", func(s *Submission) { s.Address = "1 St" }, "Please enter a valid street address"},
		{"bad city", func(s *Submission) { s.City = "St; George" }, "Please enter a valid city"},
		{"unknown state", func(s *Submission) { s.State = "NY" }, "Please select a state"},
		{"bad postal", func(s *Submission) { s.PostalCode = "8477" }, "Please enter a valid postal code (e.g., 84770 or 84770-1234)"},
		{"bad phone", func(s *Submission) { s.Phone = "555-12" }, "Please enter a valid phone number"},
		{"unknown service", func(s *Submission) { s.Service = "landscaping" }, "Please select a valid service"},
		{"long message", func(s *Submission) { s.Message = strings.Repeat("x", 1001) }, "Message must be less than 1000 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestSubmissionValidate_OptionalFields(t *testing.T) {
	s := validSubmission()
	s.Service = ""
	s.Message = ""
	assert.NoError(t, s.Validate())
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4359224340", "(435) 922-4340"},
		{"435.922.4340", "(435) 922-4340"},
		{"+1 435 922 4340", "(435) 922-4340"},
		{"1-435-922-4340", "(435) 922-4340"},
		{"(435) 922-4340", "(435) 922-4340"},
	}
	for _, tt := range tests {
		got, err := normalizePhone(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once, err := normalizePhone("435 922 4340")
	require.NoError(t, err)
	twice, err := normalizePhone(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestQuickQuoteValidate(t *testing.T) {
	q := &QuickQuote{Name: "John Doe", Phone: "8015551234", Service: ServiceGutters}
	require.NoError(t, q.Validate())
	assert.Equal(t, "(801) 555-1234", q.Phone)

	q = &QuickQuote{Name: "John Doe", Phone: "8015551234"}
	assert.EqualError(t, q.Validate(), "Please select a valid service")

	// Full-form-only categories are not offered on the popup.
	q = &QuickQuote{Name: "John Doe", Phone: "8015551234", Service: ServiceMultiple}
	assert.Error(t, q.Validate())

	q = &QuickQuote{Name: "J", Phone: "8015551234", Service: ServiceRoofing}
	assert.EqualError(t, q.Validate(), "Name must be at least 2 characters")
}

func TestQuickQuoteContact(t *testing.T) {
	q := &QuickQuote{Name: "John Doe", Phone: "(801) 555-1234", Email: "jd@example.com", Service: ServiceSiding}
	s := q.Contact()
	assert.Equal(t, "John", s.FirstName)
	assert.Equal(t, "Doe", s.LastName)
	assert.Equal(t, "website_quick_quote", s.Source)
	assert.Equal(t, ServiceSiding, s.Service)

	s = (&QuickQuote{Name: "Cher", Phone: "8015551234", Service: ServiceRoofing}).Contact()
	assert.Equal(t, "Cher", s.FirstName)
	assert.Empty(t, s.LastName)
}
