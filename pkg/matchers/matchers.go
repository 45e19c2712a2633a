package matchers

// Kind names a matcher variant
type Kind string

const (
	KindFixed    Kind = "fixed"
	KindNone     Kind = "none"
	KindVariable Kind = "variable"
	KindRegex    Kind = "regex"
)

// Match is the outcome of a successful NDC extraction
type Match struct {
	// NDC is the extracted national destination code, possibly empty
	NDC string

	// Rest is the input with the NDC removed
	Rest string

	// Zero asks national formatting to prefix the NDC with a zero
	Zero bool

	// Fallback is set when a regex matcher did not match and its
	// fallback produced the NDC instead
	Fallback bool
}

// Matcher attempts to extract an NDC prefix from a digit string.
// Implementations live in this package only.
type Matcher interface {
	// Match returns the extracted NDC and the remaining digits,
	// or false when the matcher does not apply to digits.
	Match(digits string) (Match, bool)

	// Kind reports the matcher variant
	Kind() Kind

	// String describes the matcher for logs and diagnostics
	String() string

	sealed()
}
