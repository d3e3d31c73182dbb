package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/metarecord"
	"github.com/aretw0/metarecord/internal/loader"
	"github.com/aretw0/metarecord/pkg/schema"
)

// CheckOptions configures RunCheck.
type CheckOptions struct {
	SchemaPath string
	DataPaths  []string
	// Strict fails on unknown input fields instead of reporting them.
	Strict bool
	// Stats prints the record counters after processing.
	Stats  bool
	Logger *slog.Logger
}

// RunCheck builds a record from every item in the data files and writes each
// one to w as a JSON line, keys in schema order.
func RunCheck(w io.Writer, opts CheckOptions) error {
	s, err := loader.LoadSchema(opts.SchemaPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	factory, err := metarecord.New(s,
		metarecord.WithLogger(opts.Logger),
		metarecord.WithMetrics(reg),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for _, path := range opts.DataPaths {
		items, err := loader.LoadData(path)
		if err != nil {
			return err
		}

		for i, item := range items {
			if opts.Strict {
				if err := schema.Validate(s, item); err != nil {
					return fmt.Errorf("%s: item %d: %w", path, i, err)
				}
			}
			rec, err := factory.Create(item)
			if err != nil {
				return fmt.Errorf("%s: item %d: %w", path, i, err)
			}
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("%s: item %d: %w", path, i, err)
			}
		}
	}

	if opts.Stats {
		return writeStats(w, reg)
	}
	return nil
}

// RunFields writes each declared field and its type, one per line.
func RunFields(w io.Writer, schemaPath string) error {
	s, err := loader.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	for name, kind := range s.All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, kind); err != nil {
			return err
		}
	}
	return nil
}

func writeStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("# %s %g", name, m.GetCounter().GetValue()))
		}
	}
	slices.Sort(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
