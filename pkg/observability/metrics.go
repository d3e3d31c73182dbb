package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/metarecord/pkg/record"
	"github.com/aretw0/metarecord/pkg/schema"
)

// Metrics holds the record collectors.
type Metrics struct {
	Created   prometheus.Counter
	Discarded *prometheus.CounterVec
	Rejected  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metarecord_records_created_total",
			Help: "Total number of records successfully built",
		}),
		Discarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metarecord_fields_discarded_total",
				Help: "Input fields dropped at construction because the schema does not declare them",
			},
			[]string{"field"},
		),
		Rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "metarecord_assignments_rejected_total",
				Help: "Values refused at construction or on Set",
			},
			[]string{"field", "reason"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Created, m.Discarded, m.Rejected)
	}
	return m
}

// Hooks returns record hooks feeding the collectors.
func (m *Metrics) Hooks() record.Hooks {
	return record.Hooks{
		OnCreate: func(*record.Record) {
			m.Created.Inc()
		},
		OnDiscard: func(d record.Diagnostic) {
			for _, f := range d.Fields {
				m.Discarded.WithLabelValues(f).Inc()
			}
		},
		OnReject: func(field string, err error) {
			m.Rejected.WithLabelValues(field, Reason(err)).Inc()
		},
	}
}

// Reason maps a rejection error to a label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, schema.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, schema.ErrUndefinedField):
		return "undefined_field"
	default:
		return "other"
	}
}
