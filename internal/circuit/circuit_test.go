package circuit_test

import (
	"math"
	"strings"
	"testing"

	"tessera/internal/circuit"
	"tessera/internal/grid"
)

func mustGrid(t *testing.T, values []int64) *grid.Grid {
	t.Helper()
	g, ok := grid.New(values)
	if !ok {
		t.Fatalf("values %v do not form a grid", values)
	}
	return g
}

func TestDeriveIsDeterministic(t *testing.T) {
	g := mustGrid(t, []int64{1, 2, 3, 4})
	a := circuit.Derive(g, circuit.Options{})
	b := circuit.Derive(g, circuit.Options{})
	if circuit.Sequence(a.Quantum) != circuit.Sequence(b.Quantum) {
		t.Fatalf("quantum derivation not deterministic")
	}
	if circuit.Sequence(a.Classical) != circuit.Sequence(b.Classical) {
		t.Fatalf("classical derivation not deterministic")
	}
}

func TestDeriveGatePalette(t *testing.T) {
	// Tokens 1..4 select y, z, h, s: single-qubit, no classical shadow.
	g := mustGrid(t, []int64{1, 2, 3, 4})
	d := circuit.Derive(g, circuit.Options{})
	if d.Qubits != 2 || d.Layers != 2 {
		t.Fatalf("qubits=%d layers=%d, want 2/2", d.Qubits, d.Layers)
	}
	want := "y(0) z(1) h(0) s(1)"
	if got := circuit.Sequence(d.Quantum); got != want {
		t.Fatalf("quantum = %q, want %q", got, want)
	}
	if len(d.Classical) != 0 {
		t.Fatalf("classical shadow = %v, want empty", d.Classical)
	}
}

func TestDeriveRotationAngle(t *testing.T) {
	// Token 8 selects rx with angle (8%32+1)*pi/16.
	g := mustGrid(t, []int64{8})
	d := circuit.Derive(g, circuit.Options{})
	if len(d.Quantum) != 1 || d.Quantum[0].Name != "rx" {
		t.Fatalf("quantum = %v, want one rx", d.Quantum)
	}
	want := 9 * math.Pi / 16
	if d.Quantum[0].Angle != want {
		t.Fatalf("angle = %v, want %v", d.Quantum[0].Angle, want)
	}
	if circuit.Angle(0) == 0 {
		t.Fatalf("angles must never be zero")
	}
}

func TestDeriveCxOnSingleQubitFallsBackToX(t *testing.T) {
	// Token 11 selects cx, but a 1x1 grid has one qubit.
	g := mustGrid(t, []int64{11})
	d := circuit.Derive(g, circuit.Options{})
	if got := circuit.Sequence(d.Quantum); got != "x(0)" {
		t.Fatalf("quantum = %q, want x(0)", got)
	}
	if got := circuit.Sequence(d.Classical); got != "x(0)" {
		t.Fatalf("classical = %q, want x(0)", got)
	}
}

func TestDeriveCxTargetSelection(t *testing.T) {
	// Token 23 selects cx (23%12=11); shift = 1 + 23%1 = 1, target (0+1)%2.
	g := mustGrid(t, []int64{23, 2, 3, 4})
	d := circuit.Derive(g, circuit.Options{})
	if !strings.HasPrefix(circuit.Sequence(d.Quantum), "cx(0,1)") {
		t.Fatalf("quantum = %q, want cx(0,1) first", circuit.Sequence(d.Quantum))
	}
	if circuit.Sequence(d.Classical) != "cx(0,1)" {
		t.Fatalf("classical = %q, want cx(0,1)", circuit.Sequence(d.Classical))
	}
}

func TestReversibleOnly(t *testing.T) {
	g := mustGrid(t, []int64{1, 2, 3, 4})
	d := circuit.Derive(g, circuit.Options{ReversibleOnly: true})
	for _, gt := range append(append([]circuit.Gate{}, d.Quantum...), d.Classical...) {
		if gt.Name != "x" && gt.Name != "cx" {
			t.Fatalf("reversible mode emitted %q", gt.Name)
		}
	}
	// Every reversible gate has an exact classical correspondent.
	if circuit.Sequence(d.Quantum) != circuit.Sequence(d.Classical) {
		t.Fatalf("quantum %q and classical %q must match in reversible mode",
			circuit.Sequence(d.Quantum), circuit.Sequence(d.Classical))
	}
}

func TestDeriveHonorsCeilings(t *testing.T) {
	values := make([]int64, 16)
	for i := range values {
		values[i] = int64(i + 1)
	}
	g := mustGrid(t, values)
	d := circuit.Derive(g, circuit.Options{MaxQubits: 2, MaxLayers: 3})
	if d.Qubits != 2 || d.Layers != 3 {
		t.Fatalf("qubits=%d layers=%d, want 2/3", d.Qubits, d.Layers)
	}
	if len(d.Quantum) != 6 {
		t.Fatalf("gate count = %d, want 6", len(d.Quantum))
	}
}
