package batch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trailstamp/geotag/match"
	"github.com/trailstamp/geotag/metadata"
	"github.com/trailstamp/geotag/track"
)

// AdapterSource picks the metadata adapter for a target file and the
// path the adapter operates on. *metadata.Registry satisfies it.
type AdapterSource interface {
	ForFile(path string) (metadata.Adapter, string, error)
}

// Options control one batch run.
type Options struct {
	// Tolerance is the widest track gap interpolation may bridge.
	Tolerance time.Duration
	// Overwrite replaces existing GPS positions instead of skipping
	// already tagged files.
	Overwrite bool
	// DryRun resolves and reports without writing any metadata.
	DryRun bool
}

// Coordinator runs batches against one immutable track store.
type Coordinator struct {
	store    *track.Store
	engine   *match.Engine
	adapters AdapterSource
	opts     Options
}

func NewCoordinator(store *track.Store, adapters AdapterSource, opts Options) *Coordinator {
	return &Coordinator{
		store:    store,
		engine:   match.NewEngine(),
		adapters: adapters,
		opts:     opts,
	}
}

// Run processes the target files sequentially and returns the per-file
// report. Cancellation is checked between files; the file in flight
// always completes and the partial report is returned with the context
// error.
func (c *Coordinator) Run(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{
		RunID:     uuid.New().String(),
		DryRun:    c.opts.DryRun,
		StartedAt: time.Now(),
	}

	for _, path := range paths {
		select {
		case <-ctx.Done():
			report.FinishedAt = time.Now()
			return report, ctx.Err()
		default:
		}
		report.Outcomes = append(report.Outcomes, c.processFile(path))
	}

	report.FinishedAt = time.Now()
	return report, nil
}

func (c *Coordinator) processFile(path string) Outcome {
	adapter, target, err := c.adapters.ForFile(path)
	if err != nil {
		return Outcome{Path: path, Kind: OutcomeFailed, Err: err}
	}

	ts, ok, err := adapter.ReadTimestamp(target)
	if err != nil {
		return Outcome{Path: path, Kind: OutcomeFailed, Err: err}
	}
	if !ok {
		return Outcome{Path: path, Kind: OutcomeSkipped, Reason: SkipNoTimestamp}
	}

	if !c.opts.Overwrite {
		_, tagged, err := adapter.ReadCoordinate(target)
		if err != nil {
			return Outcome{Path: path, Kind: OutcomeFailed, Err: err}
		}
		if tagged {
			return Outcome{Path: path, Kind: OutcomeSkipped, Reason: SkipAlreadyTagged}
		}
	}

	result := c.engine.Resolve(c.store, match.Query{Timestamp: ts, MaxGap: c.opts.Tolerance})
	if !result.HasFix() {
		return Outcome{Path: path, Kind: OutcomeSkipped, Reason: result.Reason.String()}
	}

	if !c.opts.DryRun {
		coord := metadata.Coordinate{
			Lat:       result.Fix.Lat,
			Lon:       result.Fix.Lon,
			Elevation: result.Fix.Elevation,
		}
		if err := adapter.WriteCoordinate(target, coord); err != nil {
			return Outcome{Path: path, Kind: OutcomeFailed, Err: err}
		}
	}
	return Outcome{Path: path, Kind: OutcomeApplied, Status: result.Status, Fix: result.Fix}
}
