/*
Package observability exposes Prometheus metrics for record construction and assignment.

Metrics plugs into a record through record.WithHooks and counts created
records, discarded input fields and rejected assignments.
*/
package observability
