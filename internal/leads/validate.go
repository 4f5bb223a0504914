package leads

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

var (
	phoneRe      = regexp.MustCompile(`^(\+1)?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`)
	postalCodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	addressRe    = regexp.MustCompile(`^[a-zA-Z0-9\s,.-]+$`)
	cityRe       = regexp.MustCompile(`^[a-zA-Z\s.-]+$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// Validate checks every field of a contact-form submission and reports
// the first violation found. On success the phone number has been
// rewritten to its canonical (NNN) NNN-NNNN form.
func (s *Submission) Validate() error {
	if err := validateName(s.FirstName, "First name"); err != nil {
		return err
	}
	if err := validateName(s.LastName, "Last name"); err != nil {
		return err
	}
	if err := validateEmail(s.Email); err != nil {
		return err
	}
	if len(s.Address) < 5 || len(s.Address) > 200 || !addressRe.MatchString(s.Address) {
		return errors.New("Please enter a valid street address")
	}
	if len(s.City) < 2 || len(s.City) > 50 || !cityRe.MatchString(s.City) {
		return errors.New("Please enter a valid city")
	}
	if !isState(s.State) {
		return errors.New("Please select a state")
	}
	if !postalCodeRe.MatchString(s.PostalCode) {
		return errors.New("Please enter a valid postal code (e.g., 84770 or 84770-1234)")
	}
	phone, err := normalizePhone(s.Phone)
	if err != nil {
		return err
	}
	s.Phone = phone
	if s.Service != "" && !contactServices[s.Service] {
		return errors.New("Please select a valid service")
	}
	if len(s.Message) > 1000 {
		return errors.New("Message must be less than 1000 characters")
	}
	return nil
}

// Validate checks the quick-quote required fields (name, phone,
// service) and normalizes the phone number.
func (q *QuickQuote) Validate() error {
	if len(q.Name) < 2 {
		return errors.New("Name must be at least 2 characters")
	}
	if len(q.Name) > 50 {
		return errors.New("Name must be less than 50 characters")
	}
	phone, err := normalizePhone(q.Phone)
	if err != nil {
		return err
	}
	q.Phone = phone
	if q.Email != "" {
		if err := validateEmail(q.Email); err != nil {
			return err
		}
	}
	if q.Service == "" || !quickQuoteServices[q.Service] {
		return errors.New("Please select a valid service")
	}
	return nil
}

func validateName(name, field string) error {
	if len(name) < 2 {
		return fmt.Errorf("%s must be at least 2 characters", field)
	}
	if len(name) > 50 {
		return fmt.Errorf("%s must be less than 50 characters", field)
	}
	if !nameRe.MatchString(name) {
		return fmt.Errorf("%s can only contain letters, spaces, hyphens, and apostrophes", field)
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 100 {
		return errors.New("Email must be less than 100 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

func isState(code string) bool {
	for _, s := range States {
		if s == code {
			return true
		}
	}
	return false
}

// normalizePhone validates a North-American phone number and formats
// it as (NNN) NNN-NNNN. Already-normalized input passes through
// unchanged.
func normalizePhone(phone string) (string, error) {
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return "", errors.New("Please enter a valid phone number")
	}
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return "", errors.New("Please enter a valid phone number")
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:]), nil
}
