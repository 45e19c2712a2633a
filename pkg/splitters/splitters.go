package splitters

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/pattern"
)

// Kind names a splitter variant
type Kind string

const (
	KindFixed Kind = "fixed"
	KindRegex Kind = "regex"
)

// Splitter divides a digit string into an ordered sequence of groups.
// Implementations live in this package only.
type Splitter interface {
	// Split returns the groups for digits
	Split(digits string) ([]string, error)

	// Kind reports the splitter variant
	Kind() Kind

	// String describes the splitter for logs and diagnostics
	String() string

	sealed()
}

// Fixed splits by an ordered list of group sizes
type Fixed struct {
	sizes []Size
}

// NewFixed creates a splitter for the given group sizes
func NewFixed(sizes ...Size) (*Fixed, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, err
	}
	return &Fixed{sizes: append([]Size(nil), sizes...)}, nil
}

// Sizes returns the configured group sizes
func (f *Fixed) Sizes() []Size { return append([]Size(nil), f.sizes...) }

func (f *Fixed) Split(digits string) ([]string, error) {
	return apply(f.sizes, digits), nil
}

func (f *Fixed) Kind() Kind { return KindFixed }

func (f *Fixed) String() string { return "fixed" + sizesString(f.sizes) }

func (*Fixed) sealed() {}

// Rule pairs a pattern with the group sizes used when it matches
type Rule struct {
	Pattern string
	Sizes   []Size
}

type compiledRule struct {
	re    *regexp.Regexp
	expr  string
	sizes []Size
}

// Regex splits by the sizes of the first rule whose pattern matches
type Regex struct {
	rules       []compiledRule
	fallback    []Size
	hasFallback bool
}

// RegexOption configures a Regex splitter
type RegexOption func(*Regex)

// WithFallback sets the sizes used when no rule matches
func WithFallback(sizes ...Size) RegexOption {
	return func(r *Regex) {
		r.fallback = append([]Size(nil), sizes...)
		r.hasFallback = true
	}
}

// NewRegex compiles the rules in declaration order
func NewRegex(rules []Rule, opts ...RegexOption) (*Regex, error) {
	r := &Regex{}
	for _, opt := range opts {
		opt(r)
	}
	if len(rules) == 0 && !r.hasFallback {
		return nil, errors.New(errors.ErrMalformedRule, "regex splitter needs at least one rule or a fallback")
	}
	if err := validateSizes(r.fallback); err != nil {
		return nil, err
	}

	r.rules = make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		re, err := pattern.Compile(rule.Pattern)
		if err != nil {
			return nil, err
		}
		if err := validateSizes(rule.Sizes); err != nil {
			return nil, errors.Wrapf(err, errors.ErrMalformedRule, "split rule %q", rule.Pattern)
		}
		r.rules = append(r.rules, compiledRule{
			re:    re,
			expr:  rule.Pattern,
			sizes: append([]Size(nil), rule.Sizes...),
		})
	}
	return r, nil
}

// Rules returns the configured rules in declaration order
func (r *Regex) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, c := range r.rules {
		out[i] = Rule{Pattern: c.expr, Sizes: append([]Size(nil), c.sizes...)}
	}
	return out
}

// Fallback returns the fallback sizes and whether one is configured
func (r *Regex) Fallback() ([]Size, bool) {
	return append([]Size(nil), r.fallback...), r.hasFallback
}

func (r *Regex) Split(digits string) ([]string, error) {
	for _, c := range r.rules {
		if c.re.MatchString(digits) {
			return apply(c.sizes, digits), nil
		}
	}
	if r.hasFallback {
		return apply(r.fallback, digits), nil
	}
	return nil, errors.Newf(errors.ErrNoSplitRule, "no split rule applies to %q", digits).
		WithDetail("digits", digits)
}

func (r *Regex) Kind() Kind { return KindRegex }

func (r *Regex) String() string {
	parts := make([]string, 0, len(r.rules)+1)
	for _, c := range r.rules {
		parts = append(parts, fmt.Sprintf("/%s/ => %s", c.expr, sizesString(c.sizes)))
	}
	if r.hasFallback {
		parts = append(parts, "fallback => "+sizesString(r.fallback))
	}
	return "regex{" + strings.Join(parts, ", ") + "}"
}

func (*Regex) sealed() {}
