package notify

import (
	"html/template"
	"strings"

	"github.com/simpliexteriors/site-api/internal/leads"
)

// emailData is the context handed to every lead email template.
type emailData struct {
	Lead          *leads.Submission
	LeadID        string
	PhoneDigits   string
	ServiceLabel  string
	SubmittedAt   string
	Timeframe     string
	BusinessPhone string
	SiteURL       string
}

var serviceLabels = map[leads.Service]string{
	leads.ServiceRoofing:    "Roofing",
	leads.ServiceWindows:    "Windows",
	leads.ServiceSiding:     "Siding",
	leads.ServiceGutters:    "Gutters",
	leads.ServiceMultiple:   "Multiple Services",
	leads.ServiceAssessment: "Needs Assessment",
	leads.ServiceOther:      "Other",
}

func serviceLabel(s leads.Service) string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	if s != "" {
		return string(s)
	}
	return "General Inquiry"
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

const emailStyle = `body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #ea580c; color: white; padding: 20px; border-radius: 5px 5px 0 0; }
    .content { background: #f7f7f7; padding: 20px; border: 1px solid #ddd; }
    .field { margin-bottom: 15px; }
    .label { font-weight: bold; color: #555; }
    .value { margin-top: 5px; padding: 10px; background: white; border-radius: 3px; }
    .footer { margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666; }
    .cta { display: inline-block; padding: 12px 24px; background: #ea580c; color: white !important; text-decoration: none; border-radius: 5px; margin-top: 15px; }`

var ownerTemplate = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    ` + emailStyle + `
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>New Lead from Simpli Roofing &amp; Exteriors Website</h2>
    </div>
    <div class="content">
      <div class="field">
        <div class="label">Lead ID:</div>
        <div class="value">{{.LeadID}}</div>
      </div>
      <div class="field">
        <div class="label">Name:</div>
        <div class="value">{{.Lead.FirstName}} {{.Lead.LastName}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value">{{.Lead.Email}}</div>
      </div>
      <div class="field">
        <div class="label">Phone:</div>
        <div class="value">{{.Lead.Phone}}</div>
      </div>
      {{if .Lead.Address}}
      <div class="field">
        <div class="label">Address:</div>
        <div class="value">{{.Lead.Address}}<br/>{{.Lead.City}}, {{.Lead.State}} {{.Lead.PostalCode}}</div>
      </div>
      {{end}}
      {{if .Lead.Service}}
      <div class="field">
        <div class="label">Service Interested In:</div>
        <div class="value">{{.ServiceLabel}}</div>
      </div>
      {{end}}
      {{if .Lead.Message}}
      <div class="field">
        <div class="label">Message:</div>
        <div class="value">{{.Lead.Message}}</div>
      </div>
      {{end}}
      {{if .Timeframe}}
      <div class="field">
        <div class="label">Timeframe:</div>
        <div class="value">{{.Timeframe}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Lead Source:</div>
        <div class="value">{{if .Lead.Source}}{{.Lead.Source}}{{else}}Website{{end}}</div>
      </div>
      <div class="field">
        <div class="label">Submitted At:</div>
        <div class="value">{{.SubmittedAt}}</div>
      </div>
      <a href="tel:{{.PhoneDigits}}" class="cta">Call {{.Lead.FirstName}}</a>
    </div>
    <div class="footer">
      <p>This lead was automatically generated from your website at <a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
      <p>To update notification settings, please contact your website administrator.</p>
    </div>
  </div>
</body>
</html>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    ` + emailStyle + `
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thank You for Contacting Simpli Roofing &amp; Exteriors</h1>
    </div>
    <div class="content">
      <p>Dear {{.Lead.FirstName}} {{.Lead.LastName}},</p>
      <p>Thank you for reaching out to Simpli Roofing &amp; Exteriors! We've received your inquiry and appreciate your interest in our {{if .Lead.Service}}{{.ServiceLabel}}{{else}}services{{end}}.</p>
      <p><strong>What happens next?</strong></p>
      <ul>
        <li>One of our experienced team members will review your request</li>
        <li>We'll contact you within 1 business day to discuss your project</li>
        <li>We'll schedule a convenient time for a free consultation and estimate</li>
      </ul>
      <p><strong>Your Information:</strong></p>
      <ul>
        <li>Name: {{.Lead.FirstName}} {{.Lead.LastName}}</li>
        {{if .Lead.Email}}<li>Email: {{.Lead.Email}}</li>{{end}}
        {{if .Lead.Address}}<li>Address: {{.Lead.Address}}, {{.Lead.City}}, {{.Lead.State}} {{.Lead.PostalCode}}</li>{{end}}
        <li>Phone: {{.Lead.Phone}}</li>
        {{if .Lead.Service}}<li>Service: {{.ServiceLabel}}</li>{{end}}
      </ul>
      <p>If you need immediate assistance, please don't hesitate to call us at <strong>{{.BusinessPhone}}</strong>.</p>
      <p>We look forward to working with you!</p>
      <p>Best regards,<br>
      The Simpli Roofing &amp; Exteriors Team</p>
    </div>
    <div class="footer">
      <p>Simpli Roofing &amp; Exteriors - Your Trusted Exterior Specialists</p>
      <p>Serving St. George and Cedar City, Utah | 30+ Years of Experience</p>
    </div>
  </div>
</body>
</html>
`))

func renderTemplate(tmpl *template.Template, data emailData) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
