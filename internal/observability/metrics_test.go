package observability

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegisters(t *testing.T) {
	reg := prom.NewRegistry()
	m := NewMetrics(reg)
	if m == nil {
		t.Fatal("expected Metrics")
	}

	m.IncPageRendered(50 * time.Millisecond)
	m.IncDirective("ref")
	m.IncDirective("ref")
	m.IncDirectiveError("snip")
	m.IncBuildOutcome("success")

	if got := testutil.ToFloat64(m.pagesRendered); got != 1 {
		t.Errorf("expected 1 page rendered, got %v", got)
	}
	if got := testutil.ToFloat64(m.directivesRendered.WithLabelValues("ref")); got != 2 {
		t.Errorf("expected 2 ref renders, got %v", got)
	}
	if got := testutil.ToFloat64(m.directiveErrors.WithLabelValues("snip")); got != 1 {
		t.Errorf("expected 1 snip error, got %v", got)
	}
	if got := testutil.ToFloat64(m.buildOutcome.WithLabelValues("success")); got != 1 {
		t.Errorf("expected 1 success outcome, got %v", got)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.IncPageRendered(time.Millisecond)
	m.IncDirective("ref")
	m.IncDirectiveError("ref")
	m.IncBuildOutcome("failure")
}
