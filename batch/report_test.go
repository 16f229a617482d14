package batch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCountsAndSummaries(t *testing.T) {
	report := &Report{
		RunID:      "run-1",
		StartedAt:  t0,
		FinishedAt: t0.Add(3 * time.Second),
		Outcomes: []Outcome{
			{Path: "a.xmp", Kind: OutcomeSkipped, Reason: SkipNoTimestamp},
			{Path: "b.xmp", Kind: OutcomeSkipped, Reason: SkipNoTimestamp},
			{Path: "c.xmp", Kind: OutcomeSkipped, Reason: SkipNoTimestamp},
			{Path: "d.xmp", Kind: OutcomeSkipped, Reason: SkipNoTimestamp},
			{Path: "e.xmp", Kind: OutcomeSkipped, Reason: SkipGapTooLarge},
			{Path: "f.xmp", Kind: OutcomeApplied},
			{Path: "g.xmp", Kind: OutcomeFailed, Err: errors.New("boom")},
		},
	}

	assert.Equal(t, 1, report.Applied())
	assert.Equal(t, 5, report.Skipped())
	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 3*time.Second, report.Elapsed())

	summaries := report.SkipSummaries()
	require.Len(t, summaries, 2)

	// sorted by reason name
	assert.Equal(t, SkipGapTooLarge, summaries[0].Reason)
	assert.Equal(t, 1, summaries[0].Count)

	assert.Equal(t, SkipNoTimestamp, summaries[1].Reason)
	assert.Equal(t, 4, summaries[1].Count)
	// at most three examples are kept
	assert.Equal(t, []string{"a.xmp", "b.xmp", "c.xmp"}, summaries[1].Examples)
}

func TestFormatSkipMessage(t *testing.T) {
	msg := formatSkipMessage(SkipSummary{
		Reason:   SkipAlreadyTagged,
		Count:    2,
		Examples: []string{"a.xmp", "b.xmp"},
	})

	assert.Contains(t, msg, "2 files")
	assert.Contains(t, msg, "already_tagged")
	assert.Contains(t, msg, "a.xmp, b.xmp")
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
