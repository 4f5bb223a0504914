// Package analytics receives fire-and-forget telemetry from the site:
// phone-number click tracking and Web Vitals reports. Events are
// logged and counted; there is no storage or downstream processing.
package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/simpliexteriors/site-api/internal/observability/metrics"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

// PhoneClick is a tracked click on a tel: link.
type PhoneClick struct {
	Number    string `json:"number"`
	Source    string `json:"source"`
	Page      string `json:"page"`
	Referrer  string `json:"referrer"`
	Timestamp string `json:"timestamp"`
}

// WebVital is one Core Web Vitals measurement reported by the browser.
type WebVital struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Rating    string  `json:"rating"`
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Timestamp string  `json:"timestamp"`
}

// Handler handles analytics event submissions.
type Handler struct {
	logger  *logging.Logger
	metrics *metrics.LeadMetrics
}

// NewHandler creates an analytics handler.
func NewHandler(logger *logging.Logger, m *metrics.LeadMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger, metrics: m}
}

// PhoneClick handles POST /analytics/phone-click requests.
func (h *Handler) PhoneClick(w http.ResponseWriter, r *http.Request) {
	var click PhoneClick
	if err := json.NewDecoder(r.Body).Decode(&click); err != nil {
		writeError(w, "Failed to track phone click")
		return
	}

	h.logger.Info("phone click tracked",
		"number", click.Number,
		"source", click.Source,
		"page", click.Page,
		"referrer", click.Referrer,
		"remote_ip", r.RemoteAddr,
	)
	h.metrics.ObserveAnalyticsEvent("phone_click")

	writeTracked(w)
}

// WebVitals handles POST /analytics/vitals requests.
func (h *Handler) WebVitals(w http.ResponseWriter, r *http.Request) {
	var vital WebVital
	if err := json.NewDecoder(r.Body).Decode(&vital); err != nil {
		writeError(w, "Failed to track Web Vitals")
		return
	}

	h.logger.Info("web vital tracked",
		"metric", vital.Metric,
		"value", vital.Value,
		"rating", vital.Rating,
		"url", vital.URL,
	)
	if vital.Rating == "poor" {
		h.logger.Warn("poor web vital reported", "metric", vital.Metric, "value", vital.Value, "url", vital.URL)
	}
	h.metrics.ObserveAnalyticsEvent("vitals")

	writeTracked(w)
}

func writeTracked(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true, "tracked": true})
}

func writeError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
