package eval

import (
	"tessera/internal/charset"
	"tessera/internal/colorize"
	"tessera/internal/encode"
	"tessera/internal/observ"
	"tessera/internal/token"
	"tessera/internal/validate"
)

// Request describes one evaluation.
type Request struct {
	Mode    encode.Mode
	Value   string
	Profile charset.Profile // used by text mode
	Scheme  encode.Scheme   // used by text mode
	Wrap    bool            // toroidal adjacency
}

// Report is the full evaluation outcome handed to presentation layers.
type Report struct {
	Accepted    bool
	Reason      string
	DecimalText string
	Tokens      []int64
	Windows     []string // raw decimal windows, leading zeros preserved
	GridSide    int

	Checks        []validate.Result
	RangeFailures []validate.RangeFailure
	ConflictCells []int
	Colors        []string // per token; colorize.Sentinel outside [1,16^6]

	Timings observ.Report
}

// Evaluator runs requests and owns the symbol-table cache.
type Evaluator struct {
	cache *charset.Cache
}

// New returns an Evaluator with an empty charset cache.
func New() *Evaluator {
	return &Evaluator{cache: charset.NewCache()}
}

// Run evaluates one request. Encoder failures (format, empty input,
// charset membership) are returned as errors; validation failures are
// reported in the Report, not as errors.
func (e *Evaluator) Run(req Request) (Report, error) {
	sw := observ.NewStopwatch()

	stop := sw.Phase("encode")
	opts := encode.Options{Mode: req.Mode, Scheme: req.Scheme}
	if req.Mode == encode.ModeText {
		opts.Table = e.cache.Table(req.Profile)
	}
	id, err := encode.Encode(req.Value, opts)
	stop()
	if err != nil {
		return Report{}, err
	}

	stop = sw.Phase("tokenize")
	decimal := id.String()
	tokens := token.Split(decimal)
	stop()

	stop = sw.Phase("validate")
	outcome := validate.Run(token.Values(tokens), req.Wrap)
	stop()

	stop = sw.Phase("colorize")
	colors := make([]string, len(tokens))
	for i, t := range tokens {
		colors[i] = colorize.HexOrSentinel(t.Value)
	}
	stop()

	rep := Report{
		Accepted:      outcome.Accepted,
		Reason:        outcome.Reason,
		DecimalText:   decimal,
		Tokens:        token.Values(tokens),
		Windows:       make([]string, len(tokens)),
		GridSide:      outcome.Side,
		Checks:        outcome.Checks,
		RangeFailures: outcome.RangeFailures,
		ConflictCells: outcome.ConflictCells,
		Colors:        colors,
		Timings:       sw.Report(),
	}
	for i, t := range tokens {
		rep.Windows[i] = t.Text
	}
	return rep, nil
}
