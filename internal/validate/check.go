package validate

// CheckKind identifies one acceptance check.
type CheckKind uint8

const (
	// CheckShape verifies the token count is a perfect square.
	CheckShape CheckKind = iota
	// CheckRange verifies every token value lies in [1, 16^6].
	CheckRange
	// CheckAdjacency verifies no equal orthogonal neighbors in the grid.
	CheckAdjacency
)

func (k CheckKind) String() string {
	switch k {
	case CheckShape:
		return "shape"
	case CheckRange:
		return "range"
	case CheckAdjacency:
		return "adjacency"
	}
	return "unknown"
}

// Result is the tagged outcome of a single check: Pass, or Fail with a
// human-readable reason (details live on the Outcome).
type Result struct {
	Kind   CheckKind
	OK     bool
	Reason string // empty when OK
}

// RangeFailure records one token outside the valid value range.
type RangeFailure struct {
	Index int
	Value int64
}
