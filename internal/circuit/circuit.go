package circuit

import (
	"math"
	"strconv"
	"strings"

	"tessera/internal/grid"
)

// gates is the palette indexed by token % len(gates).
var gates = []string{"x", "y", "z", "h", "s", "sdg", "t", "tdg", "rx", "ry", "rz", "cx"}

// Gate is one derived operation.
type Gate struct {
	Name     string
	Args     []int // qubit indexes: one for single-qubit gates, control+target for cx
	Angle    float64
	Rotation bool
}

// Options bound the derived circuit.
type Options struct {
	MaxQubits      int // default 8
	MaxLayers      int // default 16
	ReversibleOnly bool
}

// Derivation holds both derived sequences.
type Derivation struct {
	Qubits    int
	Layers    int
	Quantum   []Gate
	Classical []Gate
}

// Angle returns the rotation angle for a token: a non-zero multiple of
// pi/16 chosen by token % 32.
func Angle(tok int64) float64 {
	k := (tok % 32) + 1
	return float64(k) * (math.Pi / 16.0)
}

// Derive walks the top-left layers x qubits corner of the grid and picks a
// gate per cell by token value.
func Derive(g *grid.Grid, opts Options) Derivation {
	maxQubits := opts.MaxQubits
	if maxQubits <= 0 {
		maxQubits = 8
	}
	maxLayers := opts.MaxLayers
	if maxLayers <= 0 {
		maxLayers = 16
	}
	q := g.Side()
	if q > maxQubits {
		q = maxQubits
	}
	layers := g.Side()
	if layers > maxLayers {
		layers = maxLayers
	}

	d := Derivation{Qubits: q, Layers: layers}
	for r := 0; r < layers; r++ {
		for c := 0; c < q; c++ {
			tok := g.At(r, c)
			name := gates[tok%int64(len(gates))]
			if opts.ReversibleOnly {
				if tok%2 == 1 && q > 1 {
					name = "cx"
				} else {
					name = "x"
				}
			}
			switch name {
			case "rx", "ry", "rz":
				d.Quantum = append(d.Quantum, Gate{Name: name, Args: []int{c}, Angle: Angle(tok), Rotation: true})
				// no classical correspondent
			case "cx":
				if q == 1 {
					gt := Gate{Name: "x", Args: []int{c}}
					d.Quantum = append(d.Quantum, gt)
					d.Classical = append(d.Classical, gt)
					break
				}
				shift := 1 + int(tok%int64(q-1))
				target := (c + shift) % q
				gt := Gate{Name: "cx", Args: []int{c, target}}
				d.Quantum = append(d.Quantum, gt)
				d.Classical = append(d.Classical, gt)
			default:
				gt := Gate{Name: name, Args: []int{c}}
				d.Quantum = append(d.Quantum, gt)
				if name == "x" {
					d.Classical = append(d.Classical, gt)
				}
			}
		}
	}
	return d
}

// Sequence renders gates as a flat text line: "x(0) rx(0.589,1) cx(0,2)".
func Sequence(gs []Gate) string {
	parts := make([]string, 0, len(gs))
	for _, g := range gs {
		var b strings.Builder
		b.WriteString(g.Name)
		b.WriteByte('(')
		if g.Rotation {
			b.WriteString(strconv.FormatFloat(g.Angle, 'g', -1, 64))
			b.WriteByte(',')
		}
		for i, a := range g.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(a))
		}
		b.WriteByte(')')
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}
