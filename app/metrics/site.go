package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "website"

const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

// SiteMetrics records page traffic, quotes and contact submissions. A nil
// *SiteMetrics is valid and records nothing.
type SiteMetrics struct {
	pageViews   *prometheus.CounterVec
	quotes      *prometheus.CounterVec
	contacts    *prometheus.CounterVec
	jobDuration *prometheus.HistogramVec
	jobFailures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *SiteMetrics {
	if reg == nil {
		return &SiteMetrics{}
	}
	pageViews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_views_total",
		Help:      "Rendered HTML pages.",
	}, []string{"page"})
	quotes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_quotes_total",
		Help:      "Price quotes computed, by plan and billing cycle.",
	}, []string{"plan", "cycle"})
	contacts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
	jobDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of background jobs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
	jobFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_failures_total",
		Help:      "Failed background job runs.",
	}, []string{"job"})
	reg.MustRegister(pageViews, quotes, contacts, jobDuration, jobFailures)

	return &SiteMetrics{
		pageViews:   pageViews,
		quotes:      quotes,
		contacts:    contacts,
		jobDuration: jobDuration,
		jobFailures: jobFailures,
	}
}

func (m *SiteMetrics) IncPageView(page string) {
	if m == nil || m.pageViews == nil {
		return
	}
	m.pageViews.WithLabelValues(normalizeLabel(page)).Inc()
}

func (m *SiteMetrics) IncQuote(plan, cycle string) {
	if m == nil || m.quotes == nil {
		return
	}
	m.quotes.WithLabelValues(normalizeLabel(strings.ToLower(plan)), normalizeLabel(cycle)).Inc()
}

func (m *SiteMetrics) IncContact(outcome string) {
	if m == nil || m.contacts == nil {
		return
	}
	m.contacts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *SiteMetrics) ObserveJob(job string, duration time.Duration, err error) {
	if m == nil || m.jobDuration == nil {
		return
	}
	m.jobDuration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
	if err != nil {
		m.jobFailures.WithLabelValues(normalizeLabel(job)).Inc()
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
