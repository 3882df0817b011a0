package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSiteMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncPageView("pricing")
	m.IncPageView("pricing")
	m.IncQuote("Professional", "annual")
	m.IncContact(OutcomeAccepted)
	m.IncContact("")

	if got := testutil.ToFloat64(m.pageViews.WithLabelValues("pricing")); got != 2 {
		t.Fatalf("expected 2 pricing views, got %v", got)
	}
	if got := testutil.ToFloat64(m.quotes.WithLabelValues("professional", "annual")); got != 1 {
		t.Fatalf("expected 1 quote, got %v", got)
	}
	if got := testutil.ToFloat64(m.contacts.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty outcome to be normalized, got %v", got)
	}
}

func TestSiteMetricsObserveJob(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveJob("contact_purge", 20*time.Millisecond, nil)
	m.ObserveJob("contact_purge", 10*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.jobFailures.WithLabelValues("contact_purge")); got != 1 {
		t.Fatalf("expected 1 failure, got %v", got)
	}
	if count := testutil.CollectAndCount(m.jobDuration); count != 1 {
		t.Fatalf("expected one histogram series, got %d", count)
	}
}

func TestSiteMetricsNilSafe(t *testing.T) {
	var m *SiteMetrics
	m.IncPageView("home")
	m.IncQuote("Basic", "monthly")
	m.IncContact(OutcomeFailed)
	m.ObserveJob("contact_purge", time.Second, nil)

	empty := New(nil)
	empty.IncPageView("home")
}
