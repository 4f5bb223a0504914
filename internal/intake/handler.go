package intake

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

// Handler handles the lead submission endpoints.
type Handler struct {
	svc             *Service
	emailConfigured bool
	logger          *logging.Logger
}

// NewHandler creates a lead intake handler. emailConfigured feeds the
// GET /contact status probe.
func NewHandler(svc *Service, emailConfigured bool, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, emailConfigured: emailConfigured, logger: logger}
}

// SubmitContact handles POST /contact requests.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var sub leads.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Error("failed to decode contact request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	result, err := h.svc.SubmitContact(r.Context(), &sub)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Thank you for contacting us! We'll be in touch within 1 business day.",
		"leadId":  result.LeadID,
		"data": map[string]any{
			"confirmationSent": result.Emails.Customer.Success,
			"notificationSent": result.Emails.Owner.Success,
			"ghlSubmitted":     result.CRM.Success,
			"ghlContactId":     result.CRM.ContactID,
		},
	})
}

// ContactStatus handles GET /contact requests.
func (h *Handler) ContactStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "Contact API is running",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"emailConfigured": h.emailConfigured,
	})
}

// SubmitQuickQuote handles POST /quick-quote requests.
func (h *Handler) SubmitQuickQuote(w http.ResponseWriter, r *http.Request) {
	var q leads.QuickQuote
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.logger.Error("failed to decode quick-quote request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	result, err := h.svc.SubmitQuickQuote(r.Context(), &q)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Quote request received successfully",
		"leadId":  result.LeadID,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
