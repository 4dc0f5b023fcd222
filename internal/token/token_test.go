package token_test

import (
	"strings"
	"testing"

	"tessera/internal/token"
)

func TestSplitCount(t *testing.T) {
	for length := 1; length <= 30; length++ {
		text := strings.Repeat("7", length)
		want := (length + token.Width - 1) / token.Width
		got := token.Split(text)
		if len(got) != want {
			t.Fatalf("len %d: token count %d, want %d", length, len(got), want)
		}
	}
	if got := token.Split(""); len(got) != 0 {
		t.Fatalf("empty text must yield no tokens, got %d", len(got))
	}
}

func TestSplitFullWindows(t *testing.T) {
	tokens := token.Split(strings.Repeat("9999999", 4))
	if len(tokens) != 4 {
		t.Fatalf("token count %d, want 4", len(tokens))
	}
	for i, tok := range tokens {
		if tok.Value != 9999999 || tok.Text != "9999999" {
			t.Fatalf("token %d = %d (%q)", i, tok.Value, tok.Text)
		}
	}
}

func TestSplitShortLastWindow(t *testing.T) {
	tokens := token.Split("12345678")
	if len(tokens) != 2 {
		t.Fatalf("token count %d, want 2", len(tokens))
	}
	if tokens[0].Value != 1234567 {
		t.Fatalf("token 0 = %d, want 1234567", tokens[0].Value)
	}
	// The final window is parsed as-is: "8" is 8, not 8000000.
	if tokens[1].Value != 8 || tokens[1].Text != "8" {
		t.Fatalf("token 1 = %d (%q), want 8", tokens[1].Value, tokens[1].Text)
	}
}

func TestSplitKeepsLeadingZeros(t *testing.T) {
	tokens := token.Split("10000001")
	if len(tokens) != 2 {
		t.Fatalf("token count %d, want 2", len(tokens))
	}
	if tokens[0].Text != "1000000" || tokens[1].Text != "1" {
		t.Fatalf("windows = %q, %q", tokens[0].Text, tokens[1].Text)
	}

	tokens = token.Split("00000010000002")
	if tokens[0].Value != 1 || tokens[0].Text != "0000001" {
		t.Fatalf("token 0 = %d (%q), want 1 (0000001)", tokens[0].Value, tokens[0].Text)
	}
	if tokens[1].Value != 2 {
		t.Fatalf("token 1 = %d, want 2", tokens[1].Value)
	}
}

func TestValues(t *testing.T) {
	vals := token.Values(token.Split("00000009999999"))
	if len(vals) != 2 || vals[0] != 0 || vals[1] != 9999999 {
		t.Fatalf("values = %v", vals)
	}
}
