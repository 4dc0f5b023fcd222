package token

import (
	"strconv"
)

// Width is the window size in decimal digits.
const Width = 7

// Token is one integer window of the encoded integer's decimal text.
type Token struct {
	Value int64
	Text  string
}

// Split cuts the decimal text into Width-digit tokens, left to right.
func Split(decimal string) []Token {
	tokens := make([]Token, 0, (len(decimal)+Width-1)/Width)
	for i := 0; i < len(decimal); i += Width {
		end := i + Width
		if end > len(decimal) {
			end = len(decimal)
		}
		window := decimal[i:end]
		v, err := strconv.ParseInt(window, 10, 64)
		if err != nil {
			continue
		}
		tokens = append(tokens, Token{Value: v, Text: window})
	}
	return tokens
}

// Values extracts the token values in stream order.
func Values(tokens []Token) []int64 {
	out := make([]int64, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}
