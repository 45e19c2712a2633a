package format

import (
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/matchers"
	"github.com/sinsoku/phony/pkg/rules"
	"github.com/sinsoku/phony/pkg/splitters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swissRule(t *testing.T, trunkOpts ...rules.TrunkOption) *rules.CountryRule {
	t.Helper()
	m, err := matchers.NewFixed(2, false)
	require.NoError(t, err)
	s, err := splitters.NewFixed(splitters.Exacts(3, 2, 2)...)
	require.NoError(t, err)
	seq, err := rules.NewSequence(m, s)
	require.NoError(t, err)
	alt, err := rules.NewAlternation(seq)
	require.NoError(t, err)
	trunk, err := rules.NewTrunk("0", trunkOpts...)
	require.NoError(t, err)
	rule, err := rules.NewCountryRule("41", alt, rules.WithTrunk(trunk))
	require.NoError(t, err)
	return rule
}

func TestFormatStyles(t *testing.T) {
	rule := swissRule(t)
	d, err := rule.Decompose("0443643533")
	require.NoError(t, err)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{}, "+41 44 364 35 33"},
		{"international", Options{Style: International}, "+41 44 364 35 33"},
		{"national", Options{Style: National}, "044 364 35 33"},
		{"national parentheses", Options{Style: National, Parentheses: true}, "(044) 364 35 33"},
		{"local", Options{Style: Local}, "364 35 33"},
		{"e164", Options{Style: E164}, "+41443643533"},
		{"custom spaces", Options{Style: International, Spaces: "-"}, "+41-44-364-35-33"},
		{"local spaces", Options{Style: National, LocalSpaces: ""}, "044 364 35 33"},
		{"split separators", Options{Style: International, Spaces: " ", LocalSpaces: "."}, "+41 44 364.35.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(rule, d, tt.opts))
		})
	}
}

func TestFormatTrunkTemplate(t *testing.T) {
	rule := swissRule(t, rules.WithTemplate("(%s)"))
	d, err := rule.Decompose("443643533")
	require.NoError(t, err)

	assert.Equal(t, "(0)44 364 35 33", Format(rule, d, Options{Style: National}))
	assert.Equal(t, "+41 44 364 35 33", Format(rule, d, Options{}))
}

func TestFormatZeroWithoutTrunk(t *testing.T) {
	d := rules.Decomposition{CountryCode: "33", NDC: "6", Zero: true, Groups: []string{"12", "34", "56", "78"}}
	assert.Equal(t, "06 12 34 56 78", Format(nil, d, Options{Style: National}))

	d.Zero = false
	assert.Equal(t, "6 12 34 56 78", Format(nil, d, Options{Style: National}))
}

func TestFormatWithoutNDC(t *testing.T) {
	d := rules.Decomposition{CountryCode: "45", Groups: []string{"32", "12", "34", "56"}}

	assert.Equal(t, "+45 32 12 34 56", Format(nil, d, Options{}))
	assert.Equal(t, "32 12 34 56", Format(nil, d, Options{Style: National, Parentheses: true}))
	assert.Equal(t, "4532123456", Normalize(d))
}

func TestParseStyle(t *testing.T) {
	for _, name := range []string{"international", "National", "LOCAL", "e164"} {
		_, err := ParseStyle(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseStyle("intl")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
