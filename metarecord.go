package metarecord

import (
	"errors"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/metarecord/internal/logging"
	"github.com/aretw0/metarecord/pkg/observability"
	"github.com/aretw0/metarecord/pkg/record"
	"github.com/aretw0/metarecord/pkg/schema"
)

// Version is the current release of metarecord.
const Version = "0.4.0"

// Factory builds records of one schema with a shared configuration.
// It is the high-level entry point for the library; a Factory is safe for
// concurrent use, the records it builds are not.
type Factory struct {
	schema    *schema.Schema
	logger    *slog.Logger
	reporters record.MultiReporter
	metrics   *observability.Metrics
	hooks     record.Hooks
	Name      string
}

// Option defines a functional option for configuring the Factory.
type Option func(*Factory)

// WithLogger sets the structured logger diagnostics are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithName labels the schema in log output.
func WithName(name string) Option {
	return func(f *Factory) {
		f.Name = name
	}
}

// WithReporter adds a diagnostic reporter next to the logger.
func WithReporter(rep record.Reporter) Option {
	return func(f *Factory) {
		f.reporters = append(f.reporters, rep)
	}
}

// WithMetrics registers Prometheus collectors with reg and feeds them from every record.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(f *Factory) {
		f.metrics = observability.NewMetrics(reg)
	}
}

// WithHooks registers observability hooks. They run after the metrics hooks.
func WithHooks(hooks record.Hooks) Option {
	return func(f *Factory) {
		f.hooks = hooks
	}
}

// New initializes a Factory for s.
func New(s *schema.Schema, opts ...Option) (*Factory, error) {
	if s == nil {
		return nil, errors.New("metarecord: schema is required")
	}

	f := &Factory{schema: s}
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logging.NewNop()
	}
	if f.Name != "" {
		f.logger = f.logger.With("schema", f.Name)
	}
	return f, nil
}

// Define parses a type map into a schema and returns a Factory for it.
func Define(typeMap map[string]string, opts ...Option) (*Factory, error) {
	s, err := schema.ParseTypeMap(typeMap)
	if err != nil {
		return nil, err
	}
	return New(s, opts...)
}

// Schema returns the schema records are built from.
func (f *Factory) Schema() *schema.Schema { return f.schema }

// Metrics returns the collectors set up by WithMetrics, or nil.
func (f *Factory) Metrics() *observability.Metrics { return f.metrics }

// Create builds a record from input.
func (f *Factory) Create(input map[string]any) (*record.Record, error) {
	rep := append(record.MultiReporter{}, f.reporters...)
	rep = append(rep, record.ReporterFunc(func(d record.Diagnostic) {
		logging.Warn(f.logger, d.Message(), d.Fields)
	}))

	return record.New(f.schema, input,
		record.WithReporter(rep),
		record.WithHooks(f.combinedHooks()),
	)
}

func (f *Factory) combinedHooks() record.Hooks {
	if f.metrics == nil {
		return f.hooks
	}
	m, h := f.metrics.Hooks(), f.hooks
	return record.Hooks{
		OnCreate: func(r *record.Record) {
			m.OnCreate(r)
			if h.OnCreate != nil {
				h.OnCreate(r)
			}
		},
		OnDiscard: func(d record.Diagnostic) {
			m.OnDiscard(d)
			if h.OnDiscard != nil {
				h.OnDiscard(d)
			}
		},
		OnReject: func(field string, err error) {
			m.OnReject(field, err)
			if h.OnReject != nil {
				h.OnReject(field, err)
			}
		},
	}
}
