package reportfmt

import (
	"encoding/json"
	"io"

	"tessera/internal/eval"
	"tessera/internal/observ"
)

// RangeFailureJSON represents one out-of-range token for JSON.
type RangeFailureJSON struct {
	Index int   `json:"index"`
	Value int64 `json:"value"`
}

// CheckJSON represents a single check result for JSON.
type CheckJSON struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// ReportJSON is the root structure of JSON output.
type ReportJSON struct {
	Accepted      bool               `json:"accepted"`
	Reason        string             `json:"reason"`
	DecimalText   string             `json:"decimal_text"`
	Tokens        []int64            `json:"tokens"`
	Windows       []string           `json:"windows,omitempty"`
	GridSide      int                `json:"grid_side"`
	RangeFailures []RangeFailureJSON `json:"range_failures,omitempty"`
	ConflictCells []int              `json:"conflict_cells,omitempty"`
	Colors        []string           `json:"colors"`
	Checks        []CheckJSON        `json:"checks,omitempty"`
	Timings       *observ.Report     `json:"timings,omitempty"`
}

// BuildJSON converts a report to its JSON representation.
func BuildJSON(rep eval.Report, opts JSONOpts) ReportJSON {
	out := ReportJSON{
		Accepted:      rep.Accepted,
		Reason:        rep.Reason,
		DecimalText:   rep.DecimalText,
		Tokens:        rep.Tokens,
		GridSide:      rep.GridSide,
		ConflictCells: rep.ConflictCells,
		Colors:        rep.Colors,
	}
	for _, f := range rep.RangeFailures {
		out.RangeFailures = append(out.RangeFailures, RangeFailureJSON{Index: f.Index, Value: f.Value})
	}
	if opts.IncludeWindows {
		out.Windows = rep.Windows
	}
	if opts.IncludeChecks {
		for _, c := range rep.Checks {
			out.Checks = append(out.Checks, CheckJSON{Name: c.Kind.String(), Passed: c.OK, Reason: c.Reason})
		}
	}
	if opts.IncludeTimings {
		t := rep.Timings
		out.Timings = &t
	}
	return out
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, rep eval.Report, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(rep, opts))
}
