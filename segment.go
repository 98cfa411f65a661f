// SPDX-License-Identifier: MIT
package tally

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment splits a line into its price expression & product name.
//
// The line must consist of exactly two runs of characters: one of price-like characters (digits,
// whitespace & `()*-+/`) and one of anything else, in either order. The split happens at the
// first class change; names containing digits are therefore not supported.
//
// Both results are sub-slices of line, concatenating them in input order yields line.
func Segment(line string) (price, name string, err error) {
	first, _ := utf8.DecodeRuneInString(line)
	if line == "" {
		err = ErrInvalidEntryFormat
		return
	}
	leadingPrice := isPriceLike(first)

	split := strings.IndexFunc(line, func(r rune) bool { return isPriceLike(r) != leadingPrice })
	if split < 0 {
		// Single class.
		err = ErrInvalidEntryFormat
		return
	}

	if leadingPrice {
		price, name = line[:split], line[split:]
	} else {
		name, price = line[:split], line[split:]
	}

	if strings.TrimSpace(name) == "" {
		price, name, err = "", "", ErrInvalidEntryFormat
	}

	return
}

// isPriceLike return true for runes that may appear in a price expression.
func isPriceLike(r rune) bool {
	switch r {
	case '(', ')', '*', '-', '+', '/':
		return true
	}

	return (r >= '0' && r <= '9') || unicode.IsSpace(r)
}
