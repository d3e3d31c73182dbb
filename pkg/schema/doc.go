// Package schema declares the shape of a record: an ordered, immutable list of
// field names, each bound to one of seven primitive kinds.
//
// The kinds are integer, float, boolean, string, list, object and null.
// KindOf classifies any Go value into one of them; the match is exact, so an
// int is never accepted where a float is declared.
//
// Basic usage:
//
//	s, err := schema.New(
//	    schema.F("id", schema.Integer),
//	    schema.F("name", schema.String),
//	    schema.F("categories", schema.List),
//	)
//
// Schemas can also be parsed from type strings, either from a plain map or
// from an ordered YAML or JSON document:
//
//	typeMap := map[string]string{
//	    "id":   "integer",
//	    "name": "string",
//	}
//
//	s, err := schema.ParseTypeMap(typeMap)
//
// Validate checks a whole map at once and reports every problem in an
// AggregateError, which is useful before building records from untrusted input.
package schema
