// Package crm maps leads into the GoHighLevel contact schema and
// posts them to the configured inbound webhook.
package crm

import (
	"regexp"
	"strings"

	"github.com/simpliexteriors/site-api/internal/leads"
)

// Contact is a lead reshaped into GHL's snake_case contact schema.
// It is built per submission and immediately transmitted.
type Contact struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name,omitempty"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	FullAddress    string   `json:"full_address,omitempty"`
	City           string   `json:"city,omitempty"`
	State          string   `json:"state,omitempty"`
	PostalCode     string   `json:"postal_code,omitempty"`
	ServiceNeeded  string   `json:"service_needed"`
	Tags           []string `json:"tags"`
	ProjectDetails string   `json:"project_details,omitempty"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
}

// serviceTags maps each service category to its CRM tag. Unmapped
// but present services fall through to "<service>-lead"; an absent
// service tags the contact as a general inquiry.
var serviceTags = map[leads.Service]string{
	leads.ServiceRoofing:    "roofing-lead",
	leads.ServiceWindows:    "windows-lead",
	leads.ServiceSiding:     "siding-lead",
	leads.ServiceGutters:    "gutters-lead",
	leads.ServiceMultiple:   "multiple-services",
	leads.ServiceAssessment: "needs-assessment",
	leads.ServiceOther:      "general-inquiry",
}

var serviceNames = map[leads.Service]string{
	leads.ServiceRoofing:    "Roofing",
	leads.ServiceWindows:    "Windows",
	leads.ServiceSiding:     "Siding",
	leads.ServiceGutters:    "Gutters",
	leads.ServiceMultiple:   "Multiple Services",
	leads.ServiceAssessment: "Needs Assessment",
}

var (
	nonPhoneRe    = regexp.MustCompile(`[^\d+]`)
	countryCodeRe = regexp.MustCompile(`^\+?1`)
	spaceRunRe    = regexp.MustCompile(`\s+`)
)

// PrepareContact deterministically maps a submission into the GHL
// contact schema.
func PrepareContact(sub *leads.Submission) Contact {
	c := Contact{
		FirstName:     sub.FirstName,
		LastName:      sub.LastName,
		Email:         sub.Email,
		Phone:         formatPhone(sub.Phone),
		FullAddress:   sub.Address,
		City:          sub.City,
		State:         sub.State,
		PostalCode:    sub.PostalCode,
		ServiceNeeded: serviceName(sub.Service),
		Tags:          contactTags(sub.Service, sub.Source),
	}
	if sub.Message != "" {
		c.ProjectDetails = sub.Message
	}
	if sub.Source != "" {
		c.AdditionalInfo = "Lead Source: " + sub.Source
	}
	return c
}

// formatPhone strips punctuation and a leading "1" country code,
// leaving the 10 significant digits GHL expects.
func formatPhone(phone string) string {
	return countryCodeRe.ReplaceAllString(nonPhoneRe.ReplaceAllString(phone, ""), "")
}

func serviceName(s leads.Service) string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	if s != "" {
		return string(s)
	}
	return "General Inquiry"
}

func contactTags(service leads.Service, source string) []string {
	tags := []string{"website-lead"}
	if source != "" {
		tags = append(tags, spaceRunRe.ReplaceAllString(strings.ToLower(source), "-"))
	}
	switch tag, ok := serviceTags[service]; {
	case ok:
		tags = append(tags, tag)
	case service != "":
		tags = append(tags, string(service)+"-lead")
	default:
		tags = append(tags, "general-inquiry")
	}
	return tags
}
