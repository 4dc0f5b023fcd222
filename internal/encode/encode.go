package encode

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"tessera/internal/charset"
)

// Mode selects the input representation.
type Mode uint8

const (
	// ModeDecimal parses the value as a base-10 digit string.
	ModeDecimal Mode = iota
	// ModeBinary parses the value as a base-2 bit string.
	ModeBinary
	// ModeText encodes the value over a symbol table.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "decimal"
	case ModeBinary:
		return "binary"
	case ModeText:
		return "text"
	}
	return "unknown"
}

// ParseMode resolves a mode name from the CLI/UI layer.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "decimal":
		return ModeDecimal, nil
	case "binary":
		return ModeBinary, nil
	case "text":
		return ModeText, nil
	default:
		return 0, fmt.Errorf("invalid mode %q (expected decimal|binary|text)", s)
	}
}

// Scheme selects the text-encoding sub-scheme.
type Scheme uint8

const (
	// SchemeClassic is positional base-k with digits 0..k-1.
	SchemeClassic Scheme = iota
	// SchemeBijective is base-k with digits 1..k.
	SchemeBijective
)

func (s Scheme) String() string {
	switch s {
	case SchemeClassic:
		return "classic"
	case SchemeBijective:
		return "bijective"
	}
	return "unknown"
}

// ParseScheme resolves a scheme name from the CLI/UI layer.
func ParseScheme(s string) (Scheme, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "classic":
		return SchemeClassic, nil
	case "bijective":
		return SchemeBijective, nil
	default:
		return 0, fmt.Errorf("invalid encoding %q (expected classic|bijective)", s)
	}
}

var (
	decimalRe = regexp.MustCompile(`^[0-9]+$`)
	binaryRe  = regexp.MustCompile(`^[01]+$`)
)

// Decimal parses a base-10 digit string into an integer.
func Decimal(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if !decimalRe.MatchString(value) {
		return nil, fmt.Errorf("decimal: %w", ErrInputFormat)
	}
	id, _ := new(big.Int).SetString(value, 10)
	return id, nil
}

// Binary parses a base-2 bit string into an integer.
func Binary(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if !binaryRe.MatchString(value) {
		return nil, fmt.Errorf("binary: %w", ErrInputFormat)
	}
	id, _ := new(big.Int).SetString(value, 2)
	return id, nil
}

// Text encodes a string over the symbol table using the given scheme.
//
// The input is normalized to NFC first, so composed and decomposed accent
// forms encode identically.
func Text(value string, scheme Scheme, table *charset.Table) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("text: %w", ErrEmptyInput)
	}
	value = norm.NFC.String(value)

	k := big.NewInt(int64(table.Len()))
	id := new(big.Int)
	digit := new(big.Int)
	pos := 0
	for _, r := range value {
		idx, ok := table.Index(r)
		if !ok {
			return nil, &MembershipError{Rune: r, Pos: pos}
		}
		if scheme == SchemeBijective {
			idx++
		}
		id.Mul(id, k)
		id.Add(id, digit.SetInt64(int64(idx)))
		pos++
	}
	return id, nil
}

// Options bundle the encoder selection for the dispatcher.
type Options struct {
	Mode   Mode
	Scheme Scheme
	Table  *charset.Table // required for ModeText
}

// Encode dispatches to the encoder selected by opts.Mode.
func Encode(value string, opts Options) (*big.Int, error) {
	switch opts.Mode {
	case ModeDecimal:
		return Decimal(value)
	case ModeBinary:
		return Binary(value)
	case ModeText:
		return Text(value, opts.Scheme, opts.Table)
	default:
		return nil, fmt.Errorf("unknown encoding mode %d", opts.Mode)
	}
}
