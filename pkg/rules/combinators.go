package rules

import (
	"fmt"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/matchers"
	"github.com/sinsoku/phony/pkg/splitters"
)

// Sequence is one formatting alternative: an NDC matcher followed by a splitter
type Sequence struct {
	matcher  matchers.Matcher
	splitter splitters.Splitter
}

// NewSequence pairs a matcher with a splitter
func NewSequence(matcher matchers.Matcher, splitter splitters.Splitter) (Sequence, error) {
	if matcher == nil || splitter == nil {
		return Sequence{}, errors.New(errors.ErrMalformedRule, "sequence needs both a matcher and a splitter")
	}
	return Sequence{matcher: matcher, splitter: splitter}, nil
}

// Matcher returns the sequence's NDC matcher
func (s Sequence) Matcher() matchers.Matcher { return s.matcher }

// Splitter returns the sequence's splitter
func (s Sequence) Splitter() splitters.Splitter { return s.splitter }

func (s Sequence) String() string {
	return fmt.Sprintf("%s >> %s", s.matcher, s.splitter)
}

// Alternation is an ordered list of sequences; the first matcher to succeed wins
type Alternation struct {
	sequences []Sequence
}

// Branch is the outcome of applying an alternation
type Branch struct {
	// Index of the committed sequence
	Index int

	Match  matchers.Match
	Groups []string
}

// NewAlternation creates an alternation over the sequences in order
func NewAlternation(sequences ...Sequence) (*Alternation, error) {
	if len(sequences) == 0 {
		return nil, errors.New(errors.ErrMalformedRule, "alternation needs at least one sequence")
	}
	for i, seq := range sequences {
		if seq.matcher == nil || seq.splitter == nil {
			return nil, errors.Newf(errors.ErrMalformedRule, "alternation sequence %d is incomplete", i)
		}
	}
	return &Alternation{sequences: append([]Sequence(nil), sequences...)}, nil
}

// Sequences returns the alternatives in declaration order
func (a *Alternation) Sequences() []Sequence {
	return append([]Sequence(nil), a.sequences...)
}

// Apply commits to the first sequence whose matcher succeeds and splits the
// rest with that sequence's splitter. Later sequences are never tried once a
// matcher has succeeded.
func (a *Alternation) Apply(digits string) (Branch, error) {
	for i, seq := range a.sequences {
		match, ok := seq.matcher.Match(digits)
		if !ok {
			continue
		}

		groups, err := seq.splitter.Split(match.Rest)
		if err != nil {
			return Branch{Index: i, Match: match}, errors.Wrapf(err, errors.ErrNoSplitRule,
				"rule %d matched ndc %q but could not split %q", i, match.NDC, match.Rest).
				WithDetail("ndc", match.NDC).
				WithDetail("rule", i)
		}
		return Branch{Index: i, Match: match, Groups: groups}, nil
	}

	return Branch{Index: -1}, errors.Newf(errors.ErrNoMatchingRule, "no rule matches %q", digits).
		WithDetail("digits", digits)
}
