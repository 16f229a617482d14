package batch

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/trailstamp/geotag/match"
)

// Skip reason constants
const (
	SkipNoTimestamp   = "no_timestamp"
	SkipAlreadyTagged = "already_tagged"
	SkipOutOfRange    = "out_of_range"
	SkipGapTooLarge   = "gap_too_large"
	SkipEmptyStore    = "empty_store"
)

// OutcomeKind classifies what happened to one target file.
type OutcomeKind int

const (
	OutcomeApplied OutcomeKind = iota
	OutcomeSkipped
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome records the result for one target file. Fix and Status are
// set for applied files, Reason for skips, Err for failures.
type Outcome struct {
	Path   string
	Kind   OutcomeKind
	Status match.Status
	Fix    *match.Fix
	Reason string
	Err    error
}

// Report is the full record of one batch run.
type Report struct {
	RunID      string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

func (r *Report) Applied() int { return r.countKind(OutcomeApplied) }
func (r *Report) Skipped() int { return r.countKind(OutcomeSkipped) }
func (r *Report) Failed() int  { return r.countKind(OutcomeFailed) }

func (r *Report) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Report) countKind(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// SkipSummary aggregates the skips of one reason, keeping up to three
// example paths.
type SkipSummary struct {
	Reason   string
	Count    int
	Examples []string
}

// SkipSummaries consolidates skipped outcomes by reason, sorted by
// reason name.
func (r *Report) SkipSummaries() []SkipSummary {
	byReason := make(map[string]*SkipSummary)
	for _, o := range r.Outcomes {
		if o.Kind != OutcomeSkipped {
			continue
		}
		s := byReason[o.Reason]
		if s == nil {
			s = &SkipSummary{Reason: o.Reason, Examples: make([]string, 0, 3)}
			byReason[o.Reason] = s
		}
		s.Count++
		if len(s.Examples) < 3 {
			s.Examples = append(s.Examples, o.Path)
		}
	}

	summaries := make([]SkipSummary, 0, len(byReason))
	for _, s := range byReason {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Reason < summaries[j].Reason
	})
	return summaries
}

// LogAll outputs the consolidated run summary.
func (r *Report) LogAll() {
	mode := ""
	if r.DryRun {
		mode = " (dry run)"
	}
	log.Printf("Run %s finished%s: %d applied, %d skipped, %d failed of %d files in %s",
		r.RunID, mode, r.Applied(), r.Skipped(), r.Failed(), len(r.Outcomes), r.Elapsed().Round(time.Millisecond))

	for _, s := range r.SkipSummaries() {
		log.Printf("%s", formatSkipMessage(s))
	}
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeFailed {
			log.Printf("Failed %s: %v", o.Path, o.Err)
		}
	}
}

// formatSkipMessage creates a human-readable summary line for one skip reason
func formatSkipMessage(s SkipSummary) string {
	var description, action string

	switch s.Reason {
	case SkipNoTimestamp:
		description = "no readable capture timestamp"
		action = "Leaving them untagged"
	case SkipAlreadyTagged:
		description = "an existing GPS position"
		action = "Keeping the existing position (use overwrite to replace)"
	case SkipOutOfRange:
		description = "timestamps outside track coverage"
		action = "Leaving them untagged"
	case SkipGapTooLarge:
		description = "track gaps wider than the tolerance"
		action = "Leaving them untagged (raise the tolerance to bridge)"
	case SkipEmptyStore:
		description = "no track data to match against"
		action = "Leaving them untagged"
	default:
		description = "an unrecognized condition"
		action = "Leaving them untagged"
	}

	examples := strings.Join(s.Examples, ", ")
	return fmt.Sprintf("%d files with %s (%s). %s. Examples: %s",
		s.Count, description, s.Reason, action, examples)
}
