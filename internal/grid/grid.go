package grid

import (
	"math"
	"sort"
)

// Side returns the integer square root of count and whether count is a
// perfect square. Non-positive counts are never square.
func Side(count int) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	m := int(math.Sqrt(float64(count)))
	for m*m > count {
		m--
	}
	for (m+1)*(m+1) <= count {
		m++
	}
	return m, m*m == count
}

// Grid is a square, row-major arrangement of token values.
type Grid struct {
	side   int
	values []int64
}

// New arranges values into a square grid. It reports false when the value
// count is not a perfect square; the grid is then undefined.
func New(values []int64) (*Grid, bool) {
	m, ok := Side(len(values))
	if !ok {
		return nil, false
	}
	return &Grid{side: m, values: values}, true
}

// Side returns the grid's side length.
func (g *Grid) Side() int { return g.side }

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) int64 { return g.values[r*g.side+c] }

// Conflicts returns the sorted flat indices of every cell that shares a
// value with its right or down orthogonal neighbor. With wrap enabled the
// rightmost column and bottom row compare against the opposite edge.
func (g *Grid) Conflicts(wrap bool) []int {
	m := g.side
	marked := make(map[int]struct{})
	mark := func(a, b int) {
		marked[a] = struct{}{}
		marked[b] = struct{}{}
	}
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			cur := g.At(r, c)
			if c+1 < m {
				if cur == g.At(r, c+1) {
					mark(r*m+c, r*m+c+1)
				}
			} else if wrap && m > 1 {
				if cur == g.At(r, 0) {
					mark(r*m+c, r*m)
				}
			}
			if r+1 < m {
				if cur == g.At(r+1, c) {
					mark(r*m+c, (r+1)*m+c)
				}
			} else if wrap && m > 1 {
				if cur == g.At(0, c) {
					mark(r*m+c, c)
				}
			}
		}
	}
	if len(marked) == 0 {
		return nil
	}
	out := make([]int, 0, len(marked))
	for i := range marked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
