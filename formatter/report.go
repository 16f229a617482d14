package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/trailstamp/geotag/batch"
	"github.com/trailstamp/geotag/match"
	"github.com/trailstamp/geotag/utils"
)

// FormatFix renders a position for terminal output.
func FormatFix(f *match.Fix) string {
	if f == nil {
		return "none"
	}
	s := fmt.Sprintf("%.5f, %.5f", f.Lat, f.Lon)
	if f.Elevation != nil {
		s += fmt.Sprintf(" (ele %.1fm)", *f.Elevation)
	}
	return s
}

// BuildText renders a batch report as plain text, one line per file
// after the summary.
func BuildText(r *batch.Report) string {
	var b strings.Builder

	mode := ""
	if r.DryRun {
		mode = ", dry run"
	}
	fmt.Fprintf(&b, "run %s%s\n", r.RunID, mode)
	fmt.Fprintf(&b, "%d applied, %d skipped, %d failed of %d files in %s\n",
		r.Applied(), r.Skipped(), r.Failed(), len(r.Outcomes), r.Elapsed().Round(time.Millisecond))

	for _, o := range r.Outcomes {
		switch o.Kind {
		case batch.OutcomeApplied:
			fmt.Fprintf(&b, "applied %s -> %s (%s)\n", o.Path, FormatFix(o.Fix), o.Status)
		case batch.OutcomeSkipped:
			fmt.Fprintf(&b, "skipped %s (%s)\n", o.Path, o.Reason)
		case batch.OutcomeFailed:
			fmt.Fprintf(&b, "failed  %s: %v\n", o.Path, o.Err)
		}
	}
	return b.String()
}

// BuildResolveText renders one resolution result for the diagnostic
// one-shot lookup.
func BuildResolveText(res match.Result) string {
	switch res.Status {
	case match.StatusExactFix:
		sample := ""
		if res.Sample != nil {
			sample = " (track sample at " + utils.Iso8601UTC(res.Sample.Timestamp) + ")"
		}
		return fmt.Sprintf("exact fix %s%s", FormatFix(res.Fix), sample)
	case match.StatusInterpolated:
		return fmt.Sprintf("interpolated fix %s (%s after previous sample, %s before next)",
			FormatFix(res.Fix), res.BeforeGap, res.AfterGap)
	default:
		return fmt.Sprintf("no fix: %s", res.Reason)
	}
}
