package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters for the lead intake and content flows.
// All methods are safe on a nil receiver so instrumentation can be
// optional in tests.
type LeadMetrics struct {
	leadsTotal     *prometheus.CounterVec
	emailTotal     *prometheus.CounterVec
	crmTotal       *prometheus.CounterVec
	analyticsTotal *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simpli",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by form and validation status",
		}, []string{"form", "status"}),
		emailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simpli",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Total notification email attempts",
		}, []string{"recipient", "status"}),
		crmTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simpli",
			Subsystem: "crm",
			Name:      "webhook_posts_total",
			Help:      "Total CRM webhook submissions",
		}, []string{"status"}),
		analyticsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "simpli",
			Subsystem: "analytics",
			Name:      "events_total",
			Help:      "Total analytics events received",
		}, []string{"event"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.emailTotal, m.crmTotal, m.analyticsTotal)
	return m
}

func (m *LeadMetrics) ObserveSubmission(form, status string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(form, status).Inc()
}

func (m *LeadMetrics) ObserveEmail(recipient, status string) {
	if m == nil {
		return
	}
	m.emailTotal.WithLabelValues(recipient, status).Inc()
}

func (m *LeadMetrics) ObserveCRM(status string) {
	if m == nil {
		return
	}
	m.crmTotal.WithLabelValues(status).Inc()
}

func (m *LeadMetrics) ObserveAnalyticsEvent(event string) {
	if m == nil {
		return
	}
	m.analyticsTotal.WithLabelValues(event).Inc()
}
