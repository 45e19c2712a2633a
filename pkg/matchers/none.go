package matchers

// None always matches with an empty NDC. Used by countries without NDCs.
type None struct{}

var none = &None{}

// NewNone returns the shared None matcher
func NewNone() *None { return none }

func (*None) Match(digits string) (Match, bool) {
	return Match{Rest: digits}, true
}

func (*None) Kind() Kind { return KindNone }

func (*None) String() string { return "none" }

func (*None) sealed() {}
