package validate

import (
	"fmt"

	"tessera/internal/colorize"
	"tessera/internal/grid"
)

// AcceptedReason is the verdict reason of an accepted state.
const AcceptedReason = "accepted"

// Outcome carries every check result plus the combined verdict.
type Outcome struct {
	Accepted bool
	Reason   string // AcceptedReason, or the first failing check's reason
	Side     int    // grid side length; 0 when the shape check fails
	Checks   []Result

	RangeFailures []RangeFailure
	ConflictCells []int
}

// Run applies the acceptance checks to the token values.
//
// Shape and range are evaluated unconditionally; adjacency only when both
// pass, since the grid is undefined otherwise.
func Run(values []int64, wrap bool) Outcome {
	out := Outcome{Checks: make([]Result, 0, 3)}

	side, square := grid.Side(len(values))
	shape := Result{Kind: CheckShape, OK: square}
	if !square {
		side = 0
		shape.Reason = fmt.Sprintf("token count %d is not a perfect square", len(values))
	}
	out.Side = side
	out.Checks = append(out.Checks, shape)

	for i, v := range values {
		if !colorize.InRange(v) {
			out.RangeFailures = append(out.RangeFailures, RangeFailure{Index: i, Value: v})
		}
	}
	rng := Result{Kind: CheckRange, OK: len(out.RangeFailures) == 0}
	if !rng.OK {
		rng.Reason = fmt.Sprintf("%d token(s) outside [1..%d]", len(out.RangeFailures), colorize.MaxIndex)
	}
	out.Checks = append(out.Checks, rng)

	if shape.OK && rng.OK {
		g, _ := grid.New(values)
		out.ConflictCells = g.Conflicts(wrap)
		adj := Result{Kind: CheckAdjacency, OK: len(out.ConflictCells) == 0}
		if !adj.OK {
			adj.Reason = fmt.Sprintf("adjacency conflict: %d cell(s) equal an orthogonal neighbor", len(out.ConflictCells))
		}
		out.Checks = append(out.Checks, adj)
	}

	out.Accepted = true
	out.Reason = AcceptedReason
	for _, c := range out.Checks {
		if !c.OK {
			out.Accepted = false
			out.Reason = c.Reason
			break
		}
	}
	return out
}
