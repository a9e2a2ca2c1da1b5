package store

import (
	"context"

	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
)

// Quarantine is told about every stored record skipped because it failed
// validation on read.
type Quarantine func(ctx context.Context, collection, id string, err error)

// Options are shared by all drivers.
type Options struct {
	Quarantine Quarantine
}

type Option func(*Options)

// WithQuarantine overrides the default log-only quarantine hook.
func WithQuarantine(q Quarantine) Option {
	return func(o *Options) { o.Quarantine = q }
}

// BuildOptions applies opts over the defaults.
func BuildOptions(opts ...Option) Options {
	o := Options{Quarantine: LogQuarantine(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LogQuarantine logs the skipped record and counts it when m is non-nil.
func LogQuarantine(m *metrics.Metrics) Quarantine {
	return func(ctx context.Context, collection, id string, err error) {
		slogx.FromContext(ctx).Warn("skipping malformed record",
			"collection", collection,
			"id", id,
			"error", err,
		)
		m.IncQuarantined(collection)
	}
}
