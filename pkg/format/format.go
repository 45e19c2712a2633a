// Package format renders decomposed numbers as text.
package format

import (
	"strings"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/rules"
)

// Style selects how a number is rendered
type Style string

const (
	// International renders "+41 44 364 35 33"
	International Style = "international"
	// National renders "044 364 35 33"
	National Style = "national"
	// Local renders only the subscriber groups, "364 35 33"
	Local Style = "local"
	// E164 renders "+41443643533"
	E164 Style = "e164"
)

// Styles lists the supported styles
var Styles = []Style{International, National, Local, E164}

// ParseStyle reads a style name
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown format style %q", name).
		WithDetail("style", name)
}

// Options controls rendering
type Options struct {
	Style Style

	// Spaces separates the parts, defaults to " "
	Spaces string

	// LocalSpaces separates the subscriber groups, defaults to Spaces
	LocalSpaces string

	// Parentheses wraps the national prefix: "(044) 364 35 33"
	Parentheses bool
}

// DefaultOptions renders international numbers separated by spaces
func DefaultOptions() Options {
	return Options{Style: International, Spaces: " "}
}

func (o Options) withDefaults() Options {
	if o.Style == "" {
		o.Style = International
	}
	if o.Spaces == "" {
		o.Spaces = " "
	}
	if o.LocalSpaces == "" {
		o.LocalSpaces = o.Spaces
	}
	return o
}

// Format renders d. rule supplies the trunk template for national output
// and may be nil.
func Format(rule *rules.CountryRule, d rules.Decomposition, opts Options) string {
	opts = opts.withDefaults()
	local := strings.Join(d.Groups, opts.LocalSpaces)

	switch opts.Style {
	case E164:
		return "+" + Normalize(d)
	case Local:
		return local
	case National:
		prefix := nationalPrefix(rule, d)
		if prefix != "" && opts.Parentheses {
			prefix = "(" + prefix + ")"
		}
		return join(opts.Spaces, prefix, local)
	default:
		return join(opts.Spaces, "+"+d.CountryCode, d.NDC, local)
	}
}

// Normalize returns the country code followed by the national significant number
func Normalize(d rules.Decomposition) string {
	return d.CountryCode + d.National()
}

// nationalPrefix is the trunk and NDC as dialed domestically. Without a
// trunk a zero-flagged NDC gets a leading 0.
func nationalPrefix(rule *rules.CountryRule, d rules.Decomposition) string {
	if d.NDC == "" {
		return renderTrunk(rule, d.Trunk)
	}
	switch {
	case d.Trunk != "":
		return renderTrunk(rule, d.Trunk) + d.NDC
	case d.Zero:
		return "0" + d.NDC
	default:
		return d.NDC
	}
}

func renderTrunk(rule *rules.CountryRule, trunk string) string {
	if trunk == "" {
		return ""
	}
	if rule != nil && rule.Trunk() != nil {
		return rule.Trunk().Render(trunk)
	}
	return trunk
}

func join(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
