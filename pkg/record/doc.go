/*
Package record implements strict, schema-bound records.

A Record always holds every field its schema declares, never any other, and
every value it holds matches the declared kind. Values are checked on
construction and on every Set; there is no coercion, so an int is refused for a
float field.

	s := schema.MustNew(
		schema.F("id", schema.Integer),
		schema.F("name", schema.String),
		schema.F("categories", schema.List),
	)

	r, err := record.New(s, map[string]any{
		"id":         102,
		"name":       "jimmy",
		"categories": []any{10, 21, 22},
	}, record.WithLogger(logger))

	err = r.Set("id", "103") // *schema.TypeMismatchError, id unchanged
	err = r.Delete("id")     // always ErrUnsupportedOperation

Input keys the schema does not declare are dropped at construction and reported
once, as a Diagnostic, to the Reporter given with WithReporter or WithLogger.

Iterate walks the schema (field name and kind); Values walks the data.
*/
package record
