package rules

import (
	"sort"
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
)

// Trunk strips the domestic trunk prefix before NDC matching
type Trunk struct {
	code         string
	alternatives []string
	spellings    []string // longest first, canonical first among equals
	normalize    bool
	template     string
}

// TrunkOption configures a Trunk
type TrunkOption func(*Trunk)

// WithAlternatives adds other accepted spellings of the trunk code
func WithAlternatives(codes ...string) TrunkOption {
	return func(t *Trunk) {
		t.alternatives = append(t.alternatives, codes...)
	}
}

// WithNormalize controls whether output always uses the canonical code.
// Trunks normalize by default.
func WithNormalize(normalize bool) TrunkOption {
	return func(t *Trunk) {
		t.normalize = normalize
	}
}

// WithTemplate sets how the trunk is rendered in national format.
// The template holds one %s for the trunk code, e.g. "(%s)".
func WithTemplate(template string) TrunkOption {
	return func(t *Trunk) {
		t.template = template
	}
}

// NewTrunk creates a trunk rule with the canonical code
func NewTrunk(code string, opts ...TrunkOption) (*Trunk, error) {
	t := &Trunk{code: code, normalize: true, template: "%s"}
	for _, opt := range opts {
		opt(t)
	}

	for _, spelling := range append([]string{t.code}, t.alternatives...) {
		if !isDigits(spelling) {
			return nil, errors.Newf(errors.ErrMalformedRule, "trunk code %q is not a digit string", spelling).
				WithDetail("trunk", spelling)
		}
	}
	if strings.Count(t.template, "%s") != 1 {
		return nil, errors.Newf(errors.ErrMalformedRule, "trunk template %q must contain exactly one %%s", t.template)
	}

	t.spellings = append([]string{t.code}, t.alternatives...)
	sort.SliceStable(t.spellings, func(i, j int) bool {
		return len(t.spellings[i]) > len(t.spellings[j])
	})
	return t, nil
}

// Code returns the canonical trunk code
func (t *Trunk) Code() string { return t.code }

// Alternatives returns the other accepted spellings
func (t *Trunk) Alternatives() []string { return append([]string(nil), t.alternatives...) }

// Normalize reports whether output always uses the canonical code
func (t *Trunk) Normalize() bool { return t.normalize }

// Template returns the national-format template
func (t *Trunk) Template() string { return t.template }

// Strip removes a leading trunk spelling from digits. observed is the
// spelling that was removed, or "" when digits do not start with one.
// Stripping never leaves an empty string behind.
func (t *Trunk) Strip(digits string) (rest, observed string) {
	for _, spelling := range t.spellings {
		if len(digits) > len(spelling) && strings.HasPrefix(digits, spelling) {
			return digits[len(spelling):], spelling
		}
	}
	return digits, ""
}

// Output returns the trunk text carried by a decomposition
func (t *Trunk) Output(observed string) string {
	if t.normalize {
		return t.code
	}
	return observed
}

// Render applies the national-format template to trunk
func (t *Trunk) Render(trunk string) string {
	return strings.Replace(t.template, "%s", trunk, 1)
}

func (t *Trunk) String() string {
	s := "trunk(" + strings.Join(append([]string{t.code}, t.alternatives...), "|")
	if !t.normalize {
		s += ", verbatim"
	}
	return s + ")"
}

func isDigits(s string) bool {
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
