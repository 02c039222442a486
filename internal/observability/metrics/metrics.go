package metrics

import "github.com/prometheus/client_golang/prometheus"

// SubmissionMetrics exposes counters/histograms for the contact pipeline.
type SubmissionMetrics struct {
	submissionsTotal *prometheus.CounterVec
	captchaLatency   prometheus.Histogram
	emailTotal       *prometheus.CounterVec
}

func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	m := &SubmissionMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fivesolo",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact submissions by outcome (ok or failure kind)",
		}, []string{"outcome"}),
		captchaLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fivesolo",
			Subsystem: "contact",
			Name:      "captcha_verify_seconds",
			Help:      "Latency of Turnstile verification calls",
			Buckets:   prometheus.DefBuckets,
		}),
		emailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fivesolo",
			Subsystem: "contact",
			Name:      "notification_emails_total",
			Help:      "Notification email dispatches by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.captchaLatency, m.emailTotal)
	return m
}

func (m *SubmissionMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *SubmissionMetrics) ObserveCaptchaLatency(seconds float64) {
	if m == nil {
		return
	}
	m.captchaLatency.Observe(seconds)
}

func (m *SubmissionMetrics) ObserveEmail(status string) {
	if m == nil {
		return
	}
	m.emailTotal.WithLabelValues(status).Inc()
}
