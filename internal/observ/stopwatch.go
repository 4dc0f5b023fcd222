// Package observ times the phases of an evaluation for --timings output.
package observ

import (
	"fmt"
	"time"
)

// Phase is one timed pipeline step.
type Phase struct {
	Name string
	Dur  time.Duration
}

// Stopwatch collects phase durations in execution order.
type Stopwatch struct {
	phases []Phase
}

// NewStopwatch returns an empty stopwatch.
func NewStopwatch() *Stopwatch { return &Stopwatch{phases: make([]Phase, 0, 4)} }

// Phase starts timing a named phase; the returned function stops it.
func (s *Stopwatch) Phase(name string) func() {
	start := time.Now()
	return func() {
		s.phases = append(s.phases, Phase{Name: name, Dur: time.Since(start)})
	}
}

// Phases returns the recorded phases in order.
func (s *Stopwatch) Phases() []Phase { return s.phases }

// Total returns the summed phase duration.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, p := range s.phases {
		total += p.Dur
	}
	return total
}

// PhaseReport is a serialized phase duration.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
}

// Report aggregates the stopwatch for serialization.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report converts the recorded phases to milliseconds.
func (s *Stopwatch) Report() Report {
	if len(s.phases) == 0 {
		return Report{}
	}
	r := Report{Phases: make([]PhaseReport, len(s.phases))}
	for i, p := range s.phases {
		r.Phases[i] = PhaseReport{Name: p.Name, DurationMS: millis(p.Dur)}
	}
	r.TotalMS = millis(s.Total())
	return r
}

// Summary renders a human-readable timing block.
func (s *Stopwatch) Summary() string {
	out := "timings:\n"
	for _, p := range s.phases {
		out += fmt.Sprintf("  %-12s %7.2f ms\n", p.Name, millis(p.Dur))
	}
	out += fmt.Sprintf("  %-12s %7.2f ms\n", "total", millis(s.Total()))
	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
