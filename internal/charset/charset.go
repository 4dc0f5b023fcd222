package charset

import (
	"unicode"
	"unicode/utf8"
)

// Range is an inclusive interval of Unicode code points.
type Range struct {
	Name string
	Low  rune
	High rune
}

// Profile names an ordered list of code-point ranges.
type Profile struct {
	Name   string
	Ranges []Range
}

// Table is an ordered, duplicate-free symbol set with index lookup.
type Table struct {
	profile string
	symbols []rune
	index   map[rune]int
}

// Build expands the profile's ranges into a Table.
//
// Ranges are walked in declaration order; code points that are not valid
// graphic symbols are skipped rather than reported. Build never fails.
func Build(p Profile) *Table {
	t := &Table{
		profile: p.Name,
		symbols: make([]rune, 0, 256),
		index:   make(map[rune]int, 256),
	}
	for _, r := range p.Ranges {
		for cp := r.Low; cp <= r.High; cp++ {
			if !materializable(cp) {
				continue
			}
			t.add(cp)
		}
	}
	// Whitespace symbols the ranges cannot carry.
	t.add('\n')
	t.add('\t')
	return t
}

func (t *Table) add(cp rune) {
	if _, ok := t.index[cp]; ok {
		return
	}
	t.index[cp] = len(t.symbols)
	t.symbols = append(t.symbols, cp)
}

// materializable reports whether the code point maps to a usable symbol.
// Surrogates, unassigned code points and non-graphic controls do not.
func materializable(cp rune) bool {
	return utf8.ValidRune(cp) && unicode.IsGraphic(cp)
}

// Profile returns the name of the profile the table was built from.
func (t *Table) Profile() string { return t.profile }

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.symbols) }

// Index returns the 0-based position of the symbol, if present.
func (t *Table) Index(cp rune) (int, bool) {
	i, ok := t.index[cp]
	return i, ok
}

// Symbol returns the symbol at the given position, if in bounds.
func (t *Table) Symbol(i int) (rune, bool) {
	if i < 0 || i >= len(t.symbols) {
		return 0, false
	}
	return t.symbols[i], true
}

// Symbols returns the table's symbols in order.
// Do not modify the returned slice; it aliases the table's storage.
func (t *Table) Symbols() []rune { return t.symbols }
