package matchers

import (
	"fmt"
	"regexp"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/pattern"
)

// Regex takes the text captured by its single group as the NDC. The pattern
// has to match the whole input and the group has to start at its first
// digit; a capture anywhere else counts as no match.
type Regex struct {
	expr     string
	re       *regexp.Regexp
	fallback *Fallback
}

// Fallback configures what a Regex matcher does when its pattern does not
// match: it takes the first Take digits as the NDC, or none when Take is 0.
type Fallback struct {
	Take int
}

// RegexOption configures a Regex matcher
type RegexOption func(*Regex)

// OnFailTake makes a non-matching input fall back to a fixed NDC of n digits
func OnFailTake(n int) RegexOption {
	return func(r *Regex) {
		r.fallback = &Fallback{Take: n}
	}
}

// NewRegex compiles expr, which must contain exactly one capture group
func NewRegex(expr string, opts ...RegexOption) (*Regex, error) {
	plain, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}
	if n := plain.NumSubexp(); n != 1 {
		return nil, errors.Newf(errors.ErrMalformedRule,
			"regex matcher %q must have exactly one capture group, has %d", expr, n).
			WithDetail("pattern", expr)
	}

	re, err := pattern.CompileAnchored(expr)
	if err != nil {
		return nil, err
	}

	r := &Regex{expr: expr, re: re}
	for _, opt := range opts {
		opt(r)
	}
	if r.fallback != nil && r.fallback.Take < 0 {
		return nil, errors.Newf(errors.ErrMalformedRule,
			"regex matcher %q fallback must not be negative, got %d", expr, r.fallback.Take)
	}
	return r, nil
}

// Pattern returns the expression the matcher was built from
func (r *Regex) Pattern() string { return r.expr }

// Fallback returns the configured fallback, or nil
func (r *Regex) Fallback() *Fallback {
	if r.fallback == nil {
		return nil
	}
	f := *r.fallback
	return &f
}

func (r *Regex) Match(digits string) (Match, bool) {
	loc := r.re.FindStringSubmatchIndex(digits)
	if loc == nil {
		return r.fallbackMatch(digits)
	}

	start, end := loc[2], loc[3]
	switch {
	case start < 0:
		// the group did not take part in the match
		return Match{Rest: digits}, true
	case start > 0:
		// the NDC must be a prefix of the number
		return r.fallbackMatch(digits)
	}
	return Match{NDC: digits[:end], Rest: digits[end:]}, true
}

func (r *Regex) fallbackMatch(digits string) (Match, bool) {
	if r.fallback == nil || len(digits) < r.fallback.Take {
		return Match{}, false
	}
	take := r.fallback.Take
	return Match{NDC: digits[:take], Rest: digits[take:], Fallback: true}, true
}

func (r *Regex) Kind() Kind { return KindRegex }

func (r *Regex) String() string {
	if r.fallback != nil {
		return fmt.Sprintf("regex(/%s/, on fail take %d)", r.expr, r.fallback.Take)
	}
	return fmt.Sprintf("regex(/%s/)", r.expr)
}

func (*Regex) sealed() {}
