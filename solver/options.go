package solver

import (
	"log/slog"

	"github.com/edgarcosta92/fibbing/reqdag"
)

// Options configures a Simple or Merger solver. The zero value is valid:
// withDefaults fills in the documented defaults.
type Options struct {
	// NewEdgeMetric is the sentinel metric used when grafting a
	// destination into the IGP graph (spec.md §4.3). Defaults to
	// reqdag.DefaultNewEdgeMetric.
	NewEdgeMetric int64

	// Logger receives Warn-level records for skipped, unsolvable
	// destinations and Debug-level records for per-node decisions.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Parallel solves independent destinations concurrently over a
	// bounded worker pool, each with its own cloned DAG and its own
	// spt.Oracle over the shared, mutex-guarded working graph that every
	// destination grafts itself into (spec.md §5).
	Parallel bool
}

func (o Options) withDefaults() Options {
	if o.NewEdgeMetric <= 0 {
		o.NewEdgeMetric = reqdag.DefaultNewEdgeMetric
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}
