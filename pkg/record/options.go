package record

import (
	"log/slog"

	"github.com/aretw0/metarecord/internal/logging"
)

// Hooks are observability callbacks. Any of them may be nil.
type Hooks struct {
	// OnCreate runs after a record is successfully built.
	OnCreate func(*Record)
	// OnDiscard runs when construction drops undeclared input keys.
	OnDiscard func(Diagnostic)
	// OnReject runs when a value is refused, at construction or on Set.
	OnReject func(field string, err error)
}

func (h Hooks) reject(field string, err error) {
	if h.OnReject != nil {
		h.OnReject(field, err)
	}
}

type config struct {
	reporter Reporter
	hooks    Hooks
}

// Option defines a functional option for building a Record.
type Option func(*config)

// WithReporter routes construction diagnostics to rep.
// Several reporters can be combined with MultiReporter.
func WithReporter(rep Reporter) Option {
	return func(c *config) {
		c.reporter = rep
	}
}

// WithLogger routes construction diagnostics to logger at warn level.
func WithLogger(logger *slog.Logger) Option {
	return WithReporter(ReporterFunc(func(d Diagnostic) {
		logging.Warn(logger, d.Message(), d.Fields)
	}))
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}
