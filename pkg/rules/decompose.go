package rules

import (
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
)

// Decomposition is a national number split into its parts
type Decomposition struct {
	CountryCode string   `json:"country_code" yaml:"country_code"`
	Trunk       string   `json:"trunk,omitempty" yaml:"trunk,omitempty"`
	NDC         string   `json:"ndc" yaml:"ndc"`
	Zero        bool     `json:"zero,omitempty" yaml:"zero,omitempty"`
	Groups      []string `json:"groups" yaml:"groups"`

	// Rule is the index of the sequence that produced the split
	Rule int `json:"rule" yaml:"rule"`
}

// HasTrunk reports whether the decomposition carries a trunk code
func (d Decomposition) HasTrunk() bool { return d.Trunk != "" }

// National returns the national significant number: NDC and groups
// without the trunk code
func (d Decomposition) National() string {
	return d.NDC + strings.Join(d.Groups, "")
}

// Parts returns the NDC (when present) followed by the groups
func (d Decomposition) Parts() []string {
	parts := make([]string, 0, len(d.Groups)+1)
	if d.NDC != "" {
		parts = append(parts, d.NDC)
	}
	return append(parts, d.Groups...)
}

// Decompose applies rule to a national digit string: trunk strip,
// first-match alternation, then NDC validation.
func Decompose(rule *CountryRule, input string) (Decomposition, error) {
	if rule == nil {
		return Decomposition{}, errors.New(errors.ErrInvalidInput, "no country rule given")
	}
	if !isDigits(input) {
		return Decomposition{}, errors.Newf(errors.ErrInvalidInput, "%q is not a digit string", input).
			WithDetail("input", input)
	}

	digits, observed := input, ""
	if rule.trunk != nil {
		digits, observed = rule.trunk.Strip(input)
	}

	branch, err := rule.alternation.Apply(digits)
	if err != nil {
		if phonyErr, ok := err.(*errors.PhonyError); ok {
			phonyErr.WithDetail("country", rule.code)
		}
		return Decomposition{}, err
	}

	ndc := branch.Match.NDC
	for _, v := range rule.validators {
		if v.Rejects(ndc) {
			return Decomposition{}, errors.Newf(errors.ErrInvalidNDC, "ndc %q is not valid for country %s", ndc, rule.code).
				WithDetail("ndc", ndc).
				WithDetail("country", rule.code).
				WithDetail("validator", v.String())
		}
	}

	d := Decomposition{
		CountryCode: rule.code,
		NDC:         ndc,
		Zero:        branch.Match.Zero,
		Groups:      branch.Groups,
		Rule:        branch.Index,
	}
	if d.Groups == nil {
		d.Groups = []string{}
	}
	if rule.trunk != nil {
		d.Trunk = rule.trunk.Output(observed)
	}
	return d, nil
}
