/*
Package metarecord provides strict, schema-bound records for data whose shape is only known at runtime.

A schema is a fixed, ordered list of field names, each bound to one of seven
primitive kinds. Records built from it always hold exactly those fields, and
every value is checked against its declared kind on construction and on every
assignment.

# Concept

Go has static types, but data arriving from YAML, JSON or other dynamic sources
does not. metarecord sits at that boundary: it turns a loosely typed
map[string]any into a record with a closed field set and checked values, so the
rest of the program can rely on both.

# Key Features

  - Closed field set: unknown fields cannot be read or written, and fields can never be deleted.
  - Exact kinds: no coercion, an int is never accepted for a float.
  - Defaults: declared fields missing from input get the zero value of their kind.
  - Diagnostics: unknown input keys are dropped and reported, never fatal.
  - Observability: slog warnings and Prometheus counters.

# Usage

	f, err := metarecord.Define(map[string]string{
		"id":         "integer",
		"name":       "string",
		"categories": "list",
	}, metarecord.WithLogger(slog.Default()))
	if err != nil {
		log.Fatal(err)
	}

	r, err := f.Create(map[string]any{"id": 102, "name": "jimmy"})
	if err != nil {
		log.Fatal(err)
	}

	if err := r.Set("id", "103"); err != nil {
		// *schema.TypeMismatchError
	}

The lower-level packages are pkg/schema and pkg/record.
*/
package metarecord
