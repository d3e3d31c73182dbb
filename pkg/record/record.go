package record

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/aretw0/metarecord/pkg/schema"
)

// Record holds exactly the fields its schema declares, each with a value of the declared kind.
//
// A Record is not safe for concurrent mutation; callers must serialize Set calls
// on the same instance. The schema it references may be shared freely.
type Record struct {
	schema *schema.Schema
	values map[string]any
	hooks  Hooks
}

// New builds a record from input, validating every declared field.
//
// Declared fields missing from input receive the default value of their kind.
// A declared field holding a value of the wrong kind fails the whole construction.
// Keys the schema does not declare are dropped and reported once through the
// configured Reporter; they never fail construction.
func New(s *schema.Schema, input map[string]any, opts ...Option) (*Record, error) {
	if s == nil {
		return nil, errors.New("record: schema is required")
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Record{
		schema: s,
		values: make(map[string]any, s.Len()),
		hooks:  cfg.hooks,
	}

	for name, kind := range s.All() {
		value, ok := input[name]
		if !ok {
			def, err := schema.DefaultValue(kind)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			r.values[name] = def
			continue
		}
		if err := s.Check(name, value); err != nil {
			r.hooks.reject(name, err)
			return nil, err
		}
		r.values[name] = value
	}

	if unknown := schema.UnknownFields(s, input); len(unknown) > 0 {
		d := Diagnostic{Fields: unknown}
		if cfg.reporter != nil {
			cfg.reporter.Report(d)
		}
		if r.hooks.OnDiscard != nil {
			r.hooks.OnDiscard(d)
		}
	}

	if r.hooks.OnCreate != nil {
		r.hooks.OnCreate(r)
	}
	return r, nil
}

// Schema returns the schema the record is bound to.
func (r *Record) Schema() *schema.Schema { return r.schema }

// Get returns the current value of name.
func (r *Record) Get(name string) (any, error) {
	if !r.schema.HasField(name) {
		return nil, &schema.UndefinedFieldError{Field: name}
	}
	return r.values[name], nil
}

// Set replaces the value of name. On error the previous value is kept.
func (r *Record) Set(name string, value any) error {
	if err := r.schema.Check(name, value); err != nil {
		r.hooks.reject(name, err)
		return err
	}
	r.values[name] = value
	return nil
}

// Delete always fails: a record's field set is closed once the schema declares it.
func (r *Record) Delete(name string) error {
	return &UnsupportedOperationError{Op: "delete", Field: name}
}

// Has reports whether name is a field of the record.
func (r *Record) Has(name string) bool { return r.schema.HasField(name) }

// Len returns the number of declared fields, which never changes.
func (r *Record) Len() int { return r.schema.Len() }

// Iterate yields each field name with its declared kind, in schema order.
// It walks the metadata, not the stored values; use Values for the data.
func (r *Record) Iterate() iter.Seq2[string, schema.Kind] {
	return r.schema.All()
}

// Keys yields the field names in schema order.
func (r *Record) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for name := range r.schema.All() {
			if !yield(name) {
				return
			}
		}
	}
}

// Values yields each field name with its current value, in schema order.
func (r *Record) Values() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for name := range r.schema.All() {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// Export returns a shallow copy of the current values.
// Mutating the returned map never affects the record.
func (r *Record) Export() map[string]any {
	return maps.Clone(r.values)
}

// Clone returns an independent record sharing the same schema and hooks.
// Values are copied shallowly.
func (r *Record) Clone() *Record {
	return &Record{
		schema: r.schema,
		values: maps.Clone(r.values),
		hooks:  r.hooks,
	}
}
