package metrics

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes.
const (
	OutcomeSuccess           = "success"
	OutcomeValidationError   = "validation_error"
	OutcomeInvalidBody       = "invalid_body"
	OutcomeDownstreamFailure = "downstream_failure"
)

// LeadMetrics exposes counters/histograms for lead intake flows.
type LeadMetrics struct {
	submissionsTotal     *prometheus.CounterVec
	collaboratorDuration *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total lead submissions by outcome",
		}, []string{"outcome"}),
		collaboratorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lead",
			Subsystem: "intake",
			Name:      "collaborator_duration_seconds",
			Help:      "Latency of spreadsheet append and email send calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collaborator", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.collaboratorDuration)
	return m
}

func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveCollaborator(collaborator string, err error, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.collaboratorDuration.WithLabelValues(collaborator, status).Observe(seconds)
}
