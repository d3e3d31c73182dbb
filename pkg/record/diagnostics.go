package record

import (
	"log/slog"
	"strings"
)

// Diagnostic is a non-fatal warning raised while building a record.
// It lists the input keys that were dropped because the schema does not declare them.
type Diagnostic struct {
	Fields []string
}

// Message renders the warning text.
func (d Diagnostic) Message() string {
	return "fields: " + strings.Join(d.Fields, ",") + " are not defined in the meta."
}

// Level is the severity diagnostics are reported at.
func (d Diagnostic) Level() slog.Level { return slog.LevelWarn }

func (d Diagnostic) String() string { return d.Message() }

// Reporter receives diagnostics. The record package never chooses a sink on its own.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// MultiReporter fans a diagnostic out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}

// Collector keeps every diagnostic it receives.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
