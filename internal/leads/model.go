package leads

// Service identifies the service category a lead is interested in.
type Service string

const (
	ServiceRoofing    Service = "roofing"
	ServiceWindows    Service = "windows"
	ServiceSiding     Service = "siding"
	ServiceGutters    Service = "gutters"
	ServiceMultiple   Service = "multiple"
	ServiceAssessment Service = "assessment"
	ServiceOther      Service = "other"
)

// contactServices are the categories accepted on the full contact form.
var contactServices = map[Service]bool{
	ServiceRoofing:    true,
	ServiceWindows:    true,
	ServiceSiding:     true,
	ServiceGutters:    true,
	ServiceMultiple:   true,
	ServiceAssessment: true,
	ServiceOther:      true,
}

// quickQuoteServices are the categories accepted on the quick-quote popup.
var quickQuoteServices = map[Service]bool{
	ServiceRoofing: true,
	ServiceWindows: true,
	ServiceSiding:  true,
	ServiceGutters: true,
}

// States the business serves; the contact form only offers these.
var States = []string{"UT", "AZ", "NV", "CA", "CO", "ID", "WY", "NM"}

// Submission is a validated contact-form lead. It is constructed per
// request, handed to the notification and CRM channels, and never
// persisted by this service.
type Submission struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Phone      string  `json:"phone"`
	Service    Service `json:"service,omitempty"`
	Message    string  `json:"message,omitempty"`
	Source     string  `json:"source,omitempty"`
}

// QuickQuote is the minimal lead captured by the quick-quote popup.
type QuickQuote struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email,omitempty"`
	Service   Service `json:"service"`
	Message   string  `json:"message,omitempty"`
	Timeframe string  `json:"timeframe,omitempty"`
}

// Contact returns the quick quote reshaped as a Submission so both
// channels can treat every lead uniformly. Quick quotes carry no
// address, and the single name field is split on the first space.
func (q *QuickQuote) Contact() *Submission {
	first, last := splitName(q.Name)
	return &Submission{
		FirstName: first,
		LastName:  last,
		Email:     q.Email,
		Phone:     q.Phone,
		Service:   q.Service,
		Message:   q.Message,
		Source:    "website_quick_quote",
	}
}

func splitName(name string) (first, last string) {
	for i, r := range name {
		if r == ' ' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}
