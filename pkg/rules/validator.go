package rules

import (
	"regexp"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/pattern"
)

// Validator marks NDC values as invalid
type Validator struct {
	literal string
	expr    string
	re      *regexp.Regexp
}

// InvalidNDC rejects exactly the given NDC
func InvalidNDC(ndc string) (Validator, error) {
	if !isDigits(ndc) {
		return Validator{}, errors.Newf(errors.ErrMalformedRule, "invalid ndc %q is not a digit string", ndc)
	}
	return Validator{literal: ndc}, nil
}

// InvalidNDCPattern rejects every NDC matched in full by expr
func InvalidNDCPattern(expr string) (Validator, error) {
	re, err := pattern.CompileAnchored(expr)
	if err != nil {
		return Validator{}, err
	}
	return Validator{expr: expr, re: re}, nil
}

// Rejects reports whether ndc is invalid under this validator
func (v Validator) Rejects(ndc string) bool {
	if v.re != nil {
		return v.re.MatchString(ndc)
	}
	return v.literal != "" && ndc == v.literal
}

func (v Validator) String() string {
	if v.re != nil {
		return "/" + v.expr + "/"
	}
	return v.literal
}
