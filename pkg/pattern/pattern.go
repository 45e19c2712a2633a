// Package pattern compiles rule regular expressions once per distinct
// expression. Compiled expressions are safe for concurrent use and are
// shared between every rule that declares the same pattern.
package pattern

import (
	"regexp"
	"sync"

	"github.com/sinsoku/phony/pkg/errors"
)

var cache sync.Map // expression -> *regexp.Regexp

// Compile returns the compiled form of expr, compiling it on first use.
// Invalid expressions are reported as ErrMalformedRule and never cached.
func Compile(expr string) (*regexp.Regexp, error) {
	if re, ok := cache.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMalformedRule, "invalid pattern %q", expr)
	}

	actual, _ := cache.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp), nil
}

// CompileAnchored compiles expr so that it only matches a whole input.
// The wrapper group is non-capturing, so group numbering is unchanged.
func CompileAnchored(expr string) (*regexp.Regexp, error) {
	if _, err := Compile(expr); err != nil {
		return nil, err
	}
	return Compile(`^(?:` + expr + `)$`)
}
