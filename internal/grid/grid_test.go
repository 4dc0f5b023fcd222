package grid_test

import (
	"reflect"
	"testing"

	"tessera/internal/grid"
)

func TestSide(t *testing.T) {
	squares := map[int]int{1: 1, 4: 2, 9: 3, 16: 4, 144: 12}
	for n, m := range squares {
		side, ok := grid.Side(n)
		if !ok || side != m {
			t.Fatalf("Side(%d) = %d, %v; want %d, true", n, side, ok, m)
		}
	}
	for _, n := range []int{0, -4, 2, 3, 5, 6, 10, 15} {
		if _, ok := grid.Side(n); ok {
			t.Fatalf("Side(%d) must not be square", n)
		}
	}
}

func TestNewRejectsNonSquare(t *testing.T) {
	if _, ok := grid.New([]int64{1, 2, 3}); ok {
		t.Fatalf("3 values must not form a grid")
	}
}

func TestAtRowMajor(t *testing.T) {
	g, ok := grid.New([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if !ok {
		t.Fatalf("grid not built")
	}
	if g.Side() != 3 {
		t.Fatalf("side = %d, want 3", g.Side())
	}
	if g.At(1, 2) != 6 || g.At(2, 0) != 7 {
		t.Fatalf("row-major layout broken: At(1,2)=%d At(2,0)=%d", g.At(1, 2), g.At(2, 0))
	}
}

func TestConflictsNone(t *testing.T) {
	g, _ := grid.New([]int64{1, 2, 3, 4})
	if c := g.Conflicts(false); c != nil {
		t.Fatalf("conflicts = %v, want none", c)
	}
}

func TestConflictsMarksBothCells(t *testing.T) {
	g, _ := grid.New([]int64{1, 1, 2, 3})
	got := g.Conflicts(false)
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Fatalf("conflicts = %v, want [0 1]", got)
	}
}

func TestConflictsAllEqual(t *testing.T) {
	g, _ := grid.New([]int64{7, 7, 7, 7})
	got := g.Conflicts(false)
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("conflicts = %v, want all four cells", got)
	}
}

func TestConflictsVertical(t *testing.T) {
	g, _ := grid.New([]int64{1, 2, 1, 3})
	got := g.Conflicts(false)
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("conflicts = %v, want [0 2]", got)
	}
}

func TestWrapOnlyConflict(t *testing.T) {
	// Row 0 is 1,2,1: only the wrap seam (0,2)-(0,0) collides.
	values := []int64{
		1, 2, 1,
		3, 4, 5,
		6, 7, 8,
	}
	g, _ := grid.New(values)
	if c := g.Conflicts(false); c != nil {
		t.Fatalf("no-wrap conflicts = %v, want none", c)
	}
	got := g.Conflicts(true)
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("wrap conflicts = %v, want [0 2]", got)
	}
}

func TestWrapIgnoredOnSingleCell(t *testing.T) {
	g, _ := grid.New([]int64{5})
	if c := g.Conflicts(true); c != nil {
		t.Fatalf("1x1 grid has no neighbors, got %v", c)
	}
}
