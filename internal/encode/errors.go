package encode

import (
	"errors"
	"fmt"
)

var (
	// ErrInputFormat indicates a decimal/binary value with disallowed characters.
	ErrInputFormat = errors.New("input contains disallowed characters")
	// ErrEmptyInput indicates an empty or all-whitespace text value.
	ErrEmptyInput = errors.New("empty input")
)

// MembershipError reports a character absent from the active symbol table.
type MembershipError struct {
	Rune rune
	Pos  int // rune position in the normalized input
}

func (e *MembershipError) Error() string {
	return fmt.Sprintf("symbol %q at position %d is not in the active charset", e.Rune, e.Pos)
}
