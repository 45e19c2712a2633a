package matchers

import (
	"fmt"

	"github.com/sinsoku/phony/pkg/errors"
)

// Fixed takes the first length digits as the NDC
type Fixed struct {
	length int
	zero   bool
}

// NewFixed creates a fixed-length matcher. zero is formatting metadata:
// national output prefixes the NDC with a zero.
func NewFixed(length int, zero bool) (*Fixed, error) {
	if length < 1 {
		return nil, errors.Newf(errors.ErrMalformedRule, "fixed matcher length must be positive, got %d", length).
			WithDetail("length", length)
	}
	return &Fixed{length: length, zero: zero}, nil
}

// Length returns the NDC length
func (f *Fixed) Length() int { return f.length }

// Zero reports whether national output prefixes the NDC with a zero
func (f *Fixed) Zero() bool { return f.zero }

func (f *Fixed) Match(digits string) (Match, bool) {
	if len(digits) < f.length {
		return Match{}, false
	}
	return Match{NDC: digits[:f.length], Rest: digits[f.length:], Zero: f.zero}, true
}

func (f *Fixed) Kind() Kind { return KindFixed }

func (f *Fixed) String() string {
	if f.zero {
		return fmt.Sprintf("fixed(%d, zero)", f.length)
	}
	return fmt.Sprintf("fixed(%d)", f.length)
}

func (*Fixed) sealed() {}
