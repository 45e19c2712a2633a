package matchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/armon/go-radix"
	"github.com/sinsoku/phony/pkg/errors"
)

// Variable takes the longest candidate NDC that prefixes the input.
// Candidates are stored in a radix tree, so a short candidate never masks a
// longer one sharing its prefix.
type Variable struct {
	tree       *radix.Tree
	candidates []string
	maxLength  int
}

// NewVariable creates a matcher over the candidate NDCs. maxLength bounds the
// prefix length that is considered; 0 means the longest candidate's length.
func NewVariable(candidates []string, maxLength int) (*Variable, error) {
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrMalformedRule, "variable matcher needs at least one candidate")
	}
	if maxLength < 0 {
		return nil, errors.Newf(errors.ErrMalformedRule, "variable matcher max length must not be negative, got %d", maxLength)
	}

	tree := radix.New()
	longest := 0
	for _, candidate := range candidates {
		if candidate == "" || strings.Trim(candidate, "0123456789") != "" {
			return nil, errors.Newf(errors.ErrMalformedRule, "variable matcher candidate %q is not a digit string", candidate).
				WithDetail("candidate", candidate)
		}
		if maxLength > 0 && len(candidate) > maxLength {
			return nil, errors.Newf(errors.ErrMalformedRule,
				"variable matcher candidate %q is longer than max length %d", candidate, maxLength).
				WithDetail("candidate", candidate)
		}
		tree.Insert(candidate, struct{}{})
		if len(candidate) > longest {
			longest = len(candidate)
		}
	}
	if maxLength == 0 {
		maxLength = longest
	}

	sorted := make([]string, 0, tree.Len())
	tree.Walk(func(s string, _ interface{}) bool {
		sorted = append(sorted, s)
		return false
	})

	return &Variable{tree: tree, candidates: sorted, maxLength: maxLength}, nil
}

// Candidates returns the distinct candidates in lexical order
func (v *Variable) Candidates() []string {
	out := make([]string, len(v.candidates))
	copy(out, v.candidates)
	return out
}

// MaxLength returns the effective maximum NDC length
func (v *Variable) MaxLength() int { return v.maxLength }

func (v *Variable) Match(digits string) (Match, bool) {
	key := digits
	if len(key) > v.maxLength {
		key = key[:v.maxLength]
	}
	ndc, _, ok := v.tree.LongestPrefix(key)
	if !ok || ndc == "" {
		return Match{}, false
	}
	return Match{NDC: ndc, Rest: digits[len(ndc):]}, true
}

func (v *Variable) Kind() Kind { return KindVariable }

func (v *Variable) String() string {
	byLength := make([]string, len(v.candidates))
	copy(byLength, v.candidates)
	sort.SliceStable(byLength, func(i, j int) bool { return len(byLength[i]) > len(byLength[j]) })
	if len(byLength) > 5 {
		byLength = append(byLength[:5], "...")
	}
	return fmt.Sprintf("variable(max %d: %s)", v.maxLength, strings.Join(byLength, ","))
}

func (*Variable) sealed() {}
