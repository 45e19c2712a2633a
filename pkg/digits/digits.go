// Package digits turns user-entered phone numbers into digit strings.
package digits

import (
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
)

// Number is a parsed phone number
type Number struct {
	// Digits holds only 0-9
	Digits string

	// International is set when the input started with '+'
	International bool

	// Vanity is set when letters were converted to keypad digits
	Vanity bool
}

const separators = " -./()\t"

var keypad = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// Parse strips formatting from raw. A leading '+' marks the number as
// international, and in international numbers a "(0)" trunk hint is
// dropped. Letters are read as keypad digits.
func Parse(raw string) (Number, error) {
	s := strings.TrimSpace(raw)
	var n Number

	if strings.HasPrefix(s, "+") {
		n.International = true
		s = strings.ReplaceAll(s[1:], "(0)", "")
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune(separators, r):
		default:
			d, ok := keypad[toUpper(r)]
			if !ok {
				return Number{}, errors.Newf(errors.ErrInvalidInput, "%q contains %q", raw, r).
					WithDetail("input", raw)
			}
			b.WriteByte(d)
			n.Vanity = true
		}
	}

	n.Digits = b.String()
	if n.Digits == "" {
		return Number{}, errors.Newf(errors.ErrInvalidInput, "%q contains no digits", raw).
			WithDetail("input", raw)
	}
	return n, nil
}

// IsDigits reports whether s is a non-empty string of 0-9
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Vanity converts the letters in s to keypad digits, leaving everything
// else untouched.
func Vanity(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := keypad[toUpper(r)]; ok {
			return rune(d)
		}
		return r
	}, s)
}

// HasVanity reports whether s contains keypad letters
func HasVanity(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		_, ok := keypad[toUpper(r)]
		return ok
	}) >= 0
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
