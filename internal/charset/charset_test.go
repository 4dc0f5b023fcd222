package charset_test

import (
	"testing"

	"tessera/internal/charset"
)

func TestBuildLiteHasNoDuplicates(t *testing.T) {
	table := charset.Build(charset.Lite)
	seen := make(map[rune]bool, table.Len())
	for _, cp := range table.Symbols() {
		if seen[cp] {
			t.Fatalf("duplicate symbol %q", cp)
		}
		seen[cp] = true
	}
}

func TestBuildAppendsNewlineAndTab(t *testing.T) {
	table := charset.Build(charset.Lite)
	for _, cp := range []rune{'\n', '\t'} {
		if _, ok := table.Index(cp); !ok {
			t.Fatalf("symbol %q must be present", cp)
		}
	}
	// Appended after range expansion, so they take the last two slots.
	n := table.Len()
	if cp, _ := table.Symbol(n - 2); cp != '\n' {
		t.Fatalf("expected newline at %d, got %q", n-2, cp)
	}
	if cp, _ := table.Symbol(n - 1); cp != '\t' {
		t.Fatalf("expected tab at %d, got %q", n-1, cp)
	}
}

func TestIndexMatchesOrder(t *testing.T) {
	table := charset.Build(charset.Lite)
	for i, cp := range table.Symbols() {
		idx, ok := table.Index(cp)
		if !ok || idx != i {
			t.Fatalf("symbol %q: index %d (ok=%v), want %d", cp, idx, ok, i)
		}
	}
	if idx, ok := table.Index(' '); !ok || idx != 0 {
		t.Fatalf("space should be the first lite symbol, got %d (ok=%v)", idx, ok)
	}
}

func TestBuildSkipsUnmappableCodePoints(t *testing.T) {
	p := charset.Profile{
		Name:   "surrogates",
		Ranges: []charset.Range{{Name: "bad", Low: 0xD7FF, High: 0xE000}},
	}
	table := charset.Build(p)
	for cp := rune(0xD800); cp <= 0xDFFF; cp++ {
		if _, ok := table.Index(cp); ok {
			t.Fatalf("surrogate %U must be skipped", cp)
		}
	}
}

func TestFirstOccurrenceWins(t *testing.T) {
	p := charset.Profile{
		Name: "overlap",
		Ranges: []charset.Range{
			{Name: "a", Low: 'a', High: 'c'},
			{Name: "b", Low: 'b', High: 'd'},
		},
	}
	table := charset.Build(p)
	want := []rune{'a', 'b', 'c', 'd', '\n', '\t'}
	if table.Len() != len(want) {
		t.Fatalf("table size %d, want %d", table.Len(), len(want))
	}
	for i, cp := range want {
		got, _ := table.Symbol(i)
		if got != cp {
			t.Fatalf("symbol %d = %q, want %q", i, got, cp)
		}
	}
}

func TestLiteIsPrefixOfFull(t *testing.T) {
	lite := charset.Build(charset.Lite)
	full := charset.Build(charset.Full)
	if full.Len() <= lite.Len() {
		t.Fatalf("full (%d) must be larger than lite (%d)", full.Len(), lite.Len())
	}
	for i, cp := range lite.Symbols() {
		if cp == '\n' || cp == '\t' {
			continue // appended, so their positions differ between profiles
		}
		idx, ok := full.Index(cp)
		if !ok || idx != i {
			t.Fatalf("lite symbol %q index %d not preserved in full (got %d, ok=%v)", cp, i, idx, ok)
		}
	}
}

func TestCacheRebuildsOnProfileChange(t *testing.T) {
	cache := charset.NewCache()
	a := cache.Table(charset.Lite)
	if b := cache.Table(charset.Lite); b != a {
		t.Fatalf("same profile must reuse the cached table")
	}
	c := cache.Table(charset.Full)
	if c == a {
		t.Fatalf("profile change must rebuild the table")
	}
	if c.Profile() != "full" {
		t.Fatalf("rebuilt table profile = %q, want full", c.Profile())
	}
}
