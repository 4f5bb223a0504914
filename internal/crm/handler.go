package crm

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simpliexteriors/site-api/internal/leads"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

// Handler exposes the CRM bridge directly over HTTP: a pass-through
// submission endpoint used for integration testing, and a status
// endpoint reporting whether the webhook is configured.
type Handler struct {
	client *Client
	logger *logging.Logger
}

// NewHandler creates a CRM webhook handler.
func NewHandler(client *Client, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{client: client, logger: logger}
}

// Submit handles POST /ghl-webhook requests.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub leads.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		h.logger.Error("failed to decode GHL webhook request", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	contact := PrepareContact(&sub)
	result := h.client.Send(r.Context(), contact)
	if !result.Success {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to submit to GHL",
			"error":   result.Error,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Successfully submitted to GHL",
		"contactId": result.ContactID,
		"data":      contact,
	})
}

// Status handles GET /ghl-webhook requests.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "GHL Webhook API",
		"configured": h.client.Configured(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
