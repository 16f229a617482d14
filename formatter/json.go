package formatter

import (
	"encoding/json"

	"github.com/trailstamp/geotag/batch"
	"github.com/trailstamp/geotag/utils"
)

type jsonOutcome struct {
	Path      string   `json:"path"`
	Result    string   `json:"result"`
	Match     string   `json:"match,omitempty"`
	Lat       *float64 `json:"lat,omitempty"`
	Lon       *float64 `json:"lon,omitempty"`
	Elevation *float64 `json:"elevation,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type jsonReport struct {
	RunID      string        `json:"runId"`
	DryRun     bool          `json:"dryRun"`
	StartedAt  string        `json:"startedAt"`
	FinishedAt string        `json:"finishedAt"`
	Applied    int           `json:"applied"`
	Skipped    int           `json:"skipped"`
	Failed     int           `json:"failed"`
	Outcomes   []jsonOutcome `json:"outcomes"`
}

// BuildJSON serializes a batch report to indented JSON.
func BuildJSON(r *batch.Report) []byte {
	view := jsonReport{
		RunID:      r.RunID,
		DryRun:     r.DryRun,
		StartedAt:  utils.Iso8601UTC(r.StartedAt),
		FinishedAt: utils.Iso8601UTC(r.FinishedAt),
		Applied:    r.Applied(),
		Skipped:    r.Skipped(),
		Failed:     r.Failed(),
		Outcomes:   make([]jsonOutcome, 0, len(r.Outcomes)),
	}

	for _, o := range r.Outcomes {
		jo := jsonOutcome{
			Path:   o.Path,
			Result: o.Kind.String(),
			Reason: o.Reason,
		}
		if o.Kind == batch.OutcomeApplied && o.Fix != nil {
			jo.Match = o.Status.String()
			lat, lon := o.Fix.Lat, o.Fix.Lon
			jo.Lat = &lat
			jo.Lon = &lon
			jo.Elevation = o.Fix.Elevation
		}
		if o.Err != nil {
			jo.Error = o.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, jo)
	}

	b, _ := json.MarshalIndent(view, "", "  ")
	return b
}
