package definitions

import (
	"fmt"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/matchers"
	"github.com/sinsoku/phony/pkg/rules"
	"github.com/sinsoku/phony/pkg/splitters"
)

// Build turns an authored country into a country rule. Structural problems
// are reported as ErrDefinitionInvalid wrapping the construction error.
func Build(c Country) (*rules.CountryRule, error) {
	if c.Reserved {
		return nil, invalid(c.Code, -1, errors.Newf(errors.ErrMalformedRule, "country %s is reserved", c.Code))
	}
	if len(c.Rules) == 0 {
		return nil, invalid(c.Code, -1, errors.Newf(errors.ErrMalformedRule, "country %s has no rules", c.Code))
	}

	seqs := make([]rules.Sequence, 0, len(c.Rules))
	for i, r := range c.Rules {
		m, err := buildMatcher(r.Matcher)
		if err != nil {
			return nil, invalid(c.Code, i, err)
		}
		s, err := buildSplitter(r.Splitter)
		if err != nil {
			return nil, invalid(c.Code, i, err)
		}
		seq, err := rules.NewSequence(m, s)
		if err != nil {
			return nil, invalid(c.Code, i, err)
		}
		seqs = append(seqs, seq)
	}

	alt, err := rules.NewAlternation(seqs...)
	if err != nil {
		return nil, invalid(c.Code, -1, err)
	}

	opts := []rules.CountryOption{rules.WithName(c.Name), rules.WithISO(c.ISO)}
	if c.Trunk != nil {
		trunk, err := buildTrunk(*c.Trunk)
		if err != nil {
			return nil, invalid(c.Code, -1, err)
		}
		opts = append(opts, rules.WithTrunk(trunk))
	}

	validators, err := buildValidators(c)
	if err != nil {
		return nil, invalid(c.Code, -1, err)
	}
	opts = append(opts, rules.WithValidators(validators...))

	rule, err := rules.NewCountryRule(c.Code, alt, opts...)
	if err != nil {
		return nil, invalid(c.Code, -1, err)
	}
	return rule, nil
}

func invalid(code string, rule int, err error) error {
	msg := fmt.Sprintf("country %s", code)
	if rule >= 0 {
		msg = fmt.Sprintf("country %s rule %d", code, rule)
	}
	wrapped := errors.Wrap(err, errors.ErrDefinitionInvalid, msg).WithDetail("country", code)
	if rule >= 0 {
		wrapped.WithDetail("rule", rule)
	}
	return wrapped
}

func buildMatcher(m Matcher) (matchers.Matcher, error) {
	switch m.Type {
	case MatcherFixed:
		return matchers.NewFixed(m.Length, m.Zero)
	case MatcherNone:
		return matchers.NewNone(), nil
	case MatcherVariable:
		return matchers.NewVariable(m.Candidates, m.MaxLength)
	case MatcherRegex:
		var opts []matchers.RegexOption
		if m.Fallback != nil {
			opts = append(opts, matchers.OnFailTake(*m.Fallback))
		}
		return matchers.NewRegex(m.Pattern, opts...)
	default:
		return nil, errors.Newf(errors.ErrMalformedRule, "unknown matcher type %q", m.Type)
	}
}

func buildSplitter(s Splitter) (splitters.Splitter, error) {
	switch s.Type {
	case SplitterFixed:
		sizes, err := parseSizes(s.Sizes)
		if err != nil {
			return nil, err
		}
		return splitters.NewFixed(sizes...)
	case SplitterRegex:
		patterns := make([]splitters.Rule, 0, len(s.Patterns))
		for _, p := range s.Patterns {
			sizes, err := parseSizes(p.Sizes)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, splitters.Rule{Pattern: p.Pattern, Sizes: sizes})
		}
		var opts []splitters.RegexOption
		// an explicit empty fallback keeps the digits as one group
		if s.Fallback != nil {
			fallback, err := parseSizes(s.Fallback)
			if err != nil {
				return nil, err
			}
			opts = append(opts, splitters.WithFallback(fallback...))
		}
		return splitters.NewRegex(patterns, opts...)
	default:
		return nil, errors.Newf(errors.ErrMalformedRule, "unknown splitter type %q", s.Type)
	}
}

// parseSizes reads sizes decoded from TOML (int64), YAML (int) or JSON
// (float64) numbers and "min-max" strings.
func parseSizes(raw []any) ([]splitters.Size, error) {
	sizes := make([]splitters.Size, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case int:
			sizes = append(sizes, splitters.Exact(n))
		case int64:
			sizes = append(sizes, splitters.Exact(int(n)))
		case float64:
			if n != float64(int(n)) {
				return nil, errors.Newf(errors.ErrMalformedRule, "group size %v is not a whole number", n)
			}
			sizes = append(sizes, splitters.Exact(int(n)))
		case string:
			size, err := splitters.ParseSize(n)
			if err != nil {
				return nil, err
			}
			sizes = append(sizes, size)
		default:
			return nil, errors.Newf(errors.ErrMalformedRule, "group size %v has unsupported type %T", v, v)
		}
	}
	return sizes, nil
}

func buildTrunk(t Trunk) (*rules.Trunk, error) {
	opts := []rules.TrunkOption{rules.WithAlternatives(t.Alternatives...)}
	if t.Normalize != nil {
		opts = append(opts, rules.WithNormalize(*t.Normalize))
	}
	if t.Template != "" {
		opts = append(opts, rules.WithTemplate(t.Template))
	}
	return rules.NewTrunk(t.Code, opts...)
}

// buildValidators returns the literal NDCs first, then the patterns, each
// in declaration order
func buildValidators(c Country) ([]rules.Validator, error) {
	validators := make([]rules.Validator, 0, len(c.InvalidNDCs)+len(c.InvalidNDCPatterns))
	for _, ndc := range c.InvalidNDCs {
		v, err := rules.InvalidNDC(ndc)
		if err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}
	for _, expr := range c.InvalidNDCPatterns {
		v, err := rules.InvalidNDCPattern(expr)
		if err != nil {
			return nil, err
		}
		validators = append(validators, v)
	}
	return validators, nil
}
