package rules

import (
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
)

// CountryRule is the complete rule set of one country code
type CountryRule struct {
	code        string
	name        string
	iso         string
	trunk       *Trunk
	alternation *Alternation
	validators  []Validator
}

// CountryOption configures a CountryRule
type CountryOption func(*CountryRule)

// WithName sets the display name of the country
func WithName(name string) CountryOption {
	return func(c *CountryRule) { c.name = name }
}

// WithISO sets the ISO 3166-1 alpha-2 region code
func WithISO(iso string) CountryOption {
	return func(c *CountryRule) { c.iso = strings.ToUpper(iso) }
}

// WithTrunk sets the trunk rule
func WithTrunk(trunk *Trunk) CountryOption {
	return func(c *CountryRule) { c.trunk = trunk }
}

// WithValidators appends NDC validators, evaluated in order
func WithValidators(validators ...Validator) CountryOption {
	return func(c *CountryRule) { c.validators = append(c.validators, validators...) }
}

// NewCountryRule binds an alternation to a country calling code
func NewCountryRule(code string, alternation *Alternation, opts ...CountryOption) (*CountryRule, error) {
	if !isDigits(code) || len(code) > 3 {
		return nil, errors.Newf(errors.ErrMalformedRule, "country code %q must be one to three digits", code).
			WithDetail("country", code)
	}
	if alternation == nil {
		return nil, errors.Newf(errors.ErrMalformedRule, "country %s has no rules", code).
			WithDetail("country", code)
	}

	c := &CountryRule{code: code, alternation: alternation}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Code returns the country calling code
func (c *CountryRule) Code() string { return c.code }

// Name returns the display name, if any
func (c *CountryRule) Name() string { return c.name }

// ISO returns the ISO region code, if any
func (c *CountryRule) ISO() string { return c.iso }

// Trunk returns the trunk rule or nil
func (c *CountryRule) Trunk() *Trunk { return c.trunk }

// Alternation returns the country's alternatives
func (c *CountryRule) Alternation() *Alternation { return c.alternation }

// Validators returns the NDC validators in evaluation order
func (c *CountryRule) Validators() []Validator {
	return append([]Validator(nil), c.validators...)
}

// Decompose splits a national number with this rule
func (c *CountryRule) Decompose(input string) (Decomposition, error) {
	return Decompose(c, input)
}
