package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cofound"

// Metrics holds the Prometheus collectors for the matchmaker.
type Metrics struct {
	MatchesCreated     prometheus.Counter
	MatchTransitions   *prometheus.CounterVec
	MatchQueryFallback prometheus.Counter
	StatsDegraded      *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	QuarantinedRecords *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MatchesCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_created_total",
			Help:      "Total number of matches created by admins",
		}),
		MatchTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_transitions_total",
			Help:      "Match status transitions by target status",
		}, []string{"status"}),
		MatchQueryFallback: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "match_query_fallback_total",
			Help:      "Times a user match query fell back to a capped scan",
		}),
		StatsDegraded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_degraded_total",
			Help:      "Stats counts that degraded to zero, by field",
		}, []string{"field"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Accepted public submissions by kind",
		}, []string{"kind"}),
		QuarantinedRecords: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_quarantined_records_total",
			Help:      "Stored records skipped because they failed validation on read",
		}, []string{"collection"}),
	}
}

// Discard returns collectors registered nowhere.
func Discard() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncMatchesCreated() {
	if m == nil {
		return
	}
	m.MatchesCreated.Inc()
}

func (m *Metrics) IncTransition(status string) {
	if m == nil {
		return
	}
	m.MatchTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncQueryFallback() {
	if m == nil {
		return
	}
	m.MatchQueryFallback.Inc()
}

func (m *Metrics) IncStatsDegraded(field string) {
	if m == nil {
		return
	}
	m.StatsDegraded.WithLabelValues(field).Inc()
}

func (m *Metrics) IncSubmission(kind string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncQuarantined(collection string) {
	if m == nil {
		return
	}
	m.QuarantinedRecords.WithLabelValues(collection).Inc()
}
