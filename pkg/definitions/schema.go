// Package definitions reads country rule sets from TOML and YAML documents
// and builds them into registered country rules.
//
// A document lists countries. Each country carries its calling code, an
// optional trunk, NDC validators and an ordered list of rules, each rule a
// matcher followed by a splitter:
//
//	[[countries]]
//	code = "41"
//	name = "Switzerland"
//	trunk = { code = "0" }
//
//	[[countries.rules]]
//	matcher = { type = "fixed", length = 2 }
//	splitter = { type = "fixed", sizes = [3, 2, 2] }
//
// Group sizes are integers or "min-max" strings. A regex splitter with
// `fallback = []` keeps unmatched digits as a single group; leaving the
// fallback out makes them fail with NO_SPLIT_RULE.
//
// Validators run in a fixed order: every entry of invalid_ndcs in the order
// written, then every entry of invalid_ndc_patterns in the order written.
// The first one that rejects the NDC is reported.
package definitions

// Document is one definitions file
type Document struct {
	Countries []Country `toml:"countries" yaml:"countries"`
}

// Country is the authored form of a country rule
type Country struct {
	Code     string `toml:"code" yaml:"code"`
	Name     string `toml:"name,omitempty" yaml:"name,omitempty"`
	ISO      string `toml:"iso,omitempty" yaml:"iso,omitempty"`
	Reserved bool   `toml:"reserved,omitempty" yaml:"reserved,omitempty"`
	Trunk    *Trunk `toml:"trunk,omitempty" yaml:"trunk,omitempty"`

	// InvalidNDCs are checked before InvalidNDCPatterns
	InvalidNDCs        []string `toml:"invalid_ndcs,omitempty" yaml:"invalid_ndcs,omitempty"`
	InvalidNDCPatterns []string `toml:"invalid_ndc_patterns,omitempty" yaml:"invalid_ndc_patterns,omitempty"`

	Rules []Rule `toml:"rules,omitempty" yaml:"rules,omitempty"`
}

// Trunk is the authored trunk prefix
type Trunk struct {
	Code         string   `toml:"code" yaml:"code"`
	Alternatives []string `toml:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Normalize    *bool    `toml:"normalize,omitempty" yaml:"normalize,omitempty"`
	Template     string   `toml:"template,omitempty" yaml:"template,omitempty"`
}

// Rule is one matcher/splitter sequence
type Rule struct {
	Matcher  Matcher  `toml:"matcher" yaml:"matcher"`
	Splitter Splitter `toml:"splitter" yaml:"splitter"`
}

// Matcher types
const (
	MatcherFixed    = "fixed"
	MatcherNone     = "none"
	MatcherVariable = "variable"
	MatcherRegex    = "regex"
)

// Matcher is the authored NDC matcher
type Matcher struct {
	Type string `toml:"type" yaml:"type"`

	// fixed
	Length int  `toml:"length,omitempty" yaml:"length,omitempty"`
	Zero   bool `toml:"zero,omitempty" yaml:"zero,omitempty"`

	// variable
	Candidates []string `toml:"candidates,omitempty" yaml:"candidates,omitempty"`
	MaxLength  int      `toml:"max_length,omitempty" yaml:"max_length,omitempty"`

	// regex
	Pattern  string `toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	Fallback *int   `toml:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Splitter types
const (
	SplitterFixed = "fixed"
	SplitterRegex = "regex"
)

// Splitter is the authored group splitter
type Splitter struct {
	Type     string         `toml:"type" yaml:"type"`
	Sizes    []any          `toml:"sizes,omitempty" yaml:"sizes,omitempty"`
	Patterns []SplitPattern `toml:"patterns,omitempty" yaml:"patterns,omitempty"`
	Fallback []any          `toml:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// SplitPattern maps a pattern to group sizes
type SplitPattern struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
	Sizes   []any  `toml:"sizes" yaml:"sizes"`
}
