package observability

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks render pipeline metrics via Prometheus. A nil *Metrics is
// valid and records nothing, so call sites never need to guard.
type Metrics struct {
	pagesRendered      prom.Counter
	pageDuration       prom.Histogram
	directivesRendered *prom.CounterVec
	directiveErrors    *prom.CounterVec
	buildOutcome       *prom.CounterVec
}

// NewMetrics constructs and registers the pipeline metrics.
func NewMetrics(reg *prom.Registry) *Metrics {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	m := &Metrics{
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "docdirect",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across all builds",
		}),
		pageDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docdirect",
			Name:      "page_render_duration_seconds",
			Help:      "Duration of individual page renders",
			Buckets:   prom.DefBuckets,
		}),
		directivesRendered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docdirect",
			Name:      "directives_rendered_total",
			Help:      "Directive renders by directive name",
		}, []string{"directive"}),
		directiveErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docdirect",
			Name:      "directive_errors_total",
			Help:      "Directive render failures by directive name",
		}, []string{"directive"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docdirect",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.pagesRendered, m.pageDuration, m.directivesRendered, m.directiveErrors, m.buildOutcome)
	return m
}

// IncPageRendered records one completed page render.
func (m *Metrics) IncPageRendered(d time.Duration) {
	if m == nil {
		return
	}
	m.pagesRendered.Inc()
	m.pageDuration.Observe(d.Seconds())
}

// IncDirective records one directive render.
func (m *Metrics) IncDirective(name string) {
	if m == nil {
		return
	}
	m.directivesRendered.WithLabelValues(name).Inc()
}

// IncDirectiveError records one directive render failure.
func (m *Metrics) IncDirectiveError(name string) {
	if m == nil {
		return
	}
	m.directiveErrors.WithLabelValues(name).Inc()
}

// IncBuildOutcome records a finished build by outcome ("success"/"failure").
func (m *Metrics) IncBuildOutcome(outcome string) {
	if m == nil {
		return
	}
	m.buildOutcome.WithLabelValues(outcome).Inc()
}
