package definitions

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAll(t *testing.T) *registry.Countries {
	t.Helper()
	countries := registry.NewCountries()
	_, err := LoadBuiltin(countries)
	require.NoError(t, err)
	return countries
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"europe", "nanp", "reserved"}, Builtin())
}

func TestLoadBuiltin(t *testing.T) {
	countries := loadAll(t)

	assert.Equal(t, []string{"1", "31", "33", "39", "41", "44", "45", "49", "7"}, countries.Codes())
	assert.True(t, countries.IsReserved("999"))
	assert.True(t, countries.IsReserved("28"))

	swiss, ok := countries.Lookup("41")
	require.True(t, ok)
	assert.Equal(t, "Switzerland", swiss.Name())
	assert.Equal(t, "CH", swiss.ISO())
}

func TestBuiltinDecompositions(t *testing.T) {
	countries := loadAll(t)

	tests := []struct {
		country    string
		input      string
		wantTrunk  string
		wantNDC    string
		wantGroups []string
	}{
		{"41", "0443643533", "0", "44", []string{"364", "35", "33"}},
		{"41", "0800123456", "0", "800", []string{"123", "456"}},
		{"31", "0612345678", "0", "6", []string{"12", "34", "56", "78"}},
		{"31", "08001234", "0", "800", []string{"1234"}},
		{"31", "0201234567", "0", "20", []string{"123", "4567"}},
		{"49", "03012345678", "0", "30", []string{"1234", "5678"}},
		{"49", "033203123456", "0", "33203", []string{"123", "456"}},
		{"33", "0612345678", "0", "6", []string{"12", "34", "56", "78"}},
		{"45", "32123456", "", "", []string{"32", "12", "34", "56"}},
		{"39", "0212345678", "", "02", []string{"1234", "5678"}},
		{"39", "3471234567", "", "347", []string{"123", "4567"}},
		{"7", "84951234567", "8", "495", []string{"123", "45", "67"}},
		{"7", "4951234567", "", "495", []string{"123", "45", "67"}},
		{"44", "02079460000", "0", "20", []string{"7946", "0000"}},
		{"44", "07700900123", "0", "7700", []string{"900123"}},
		{"44", "01632960123", "0", "1632", []string{"960123"}},
		{"44", "03001234567", "0", "300", []string{"123", "4567"}},
		{"1", "2125551234", "", "212", []string{"555", "1234"}},
		{"1", "12125551234", "1", "212", []string{"555", "1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.input, func(t *testing.T) {
			rule, ok := countries.Lookup(tt.country)
			require.True(t, ok)

			got, err := rule.Decompose(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTrunk, got.Trunk)
			assert.Equal(t, tt.wantNDC, got.NDC)
			assert.Equal(t, tt.wantGroups, got.Groups)
		})
	}
}

func TestBuiltinFailures(t *testing.T) {
	countries := loadAll(t)

	tests := []struct {
		country string
		input   string
		want    errors.ErrorCode
	}{
		{"1", "0125551234", errors.ErrInvalidNDC},
		{"1", "4115551234", errors.ErrInvalidNDC},
		{"49", "011012345", errors.ErrInvalidNDC},
		{"39", "5551234567", errors.ErrNoMatchingRule},
	}

	for _, tt := range tests {
		t.Run(tt.country+"/"+tt.input, func(t *testing.T) {
			rule, ok := countries.Lookup(tt.country)
			require.True(t, ok)
			_, err := rule.Decompose(tt.input)
			assert.True(t, errors.IsErrorCode(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadBuiltinByName(t *testing.T) {
	countries := registry.NewCountries()
	n, err := LoadBuiltin(countries, "nanp")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = LoadBuiltin(countries, "antarctica")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = LoadBuiltin(countries, "nanp")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateCountry))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "extra.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
countries:
  - code: "46"
    name: Sweden
    iso: se
    trunk: {code: "0"}
    rules:
      - matcher: {type: variable, candidates: ["8", "31", "40"]}
        splitter: {type: fixed, sizes: ["3-4", 2, 2]}
  - code: "888"
    reserved: true
`), 0644))

	countries := registry.NewCountries()
	n, err := LoadFile(countries, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, countries.IsReserved("888"))

	sweden, ok := countries.Lookup("46")
	require.True(t, ok)
	assert.Equal(t, "SE", sweden.ISO())

	got, err := sweden.Decompose("081234567")
	require.NoError(t, err)
	assert.Equal(t, "8", got.NDC)
	assert.Equal(t, []string{"1234", "56", "7"}, got.Groups)

	_, err = LoadFile(countries, filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionLoad))

	_, err = LoadFile(countries, filepath.Join(dir, "rules.json"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionLoad))
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
[[countries]]
code = "41"
trunc = { code = "0" }
`), FormatTOML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionLoad))

	_, err = Parse([]byte("countries:\n  - code: \"41\"\n    trunc: {code: \"0\"}\n"), FormatYAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionLoad))
}

func TestBuildMalformed(t *testing.T) {
	fixed := Splitter{Type: SplitterFixed, Sizes: []any{3, 4}}
	take := 2

	tests := []struct {
		name    string
		country Country
	}{
		{"no rules", Country{Code: "41"}},
		{"reserved", Country{Code: "41", Reserved: true}},
		{"unknown matcher", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: "prefix"}, Splitter: fixed}}}},
		{"regex without group", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherRegex, Pattern: `^\d+$`}, Splitter: fixed}}}},
		{"regex with two groups", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherRegex, Pattern: `^(\d)(\d)$`, Fallback: &take}, Splitter: fixed}}}},
		{"fixed zero length", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherFixed}, Splitter: fixed}}}},
		{"bad size", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{"4-2"}}}}}},
		{"fractional size", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{2.5}}}}}},
		{"bool size", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{true}}}}}},
		{"unknown splitter", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: "even"}}}}},
		{"empty regex splitter", Country{Code: "41", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: SplitterRegex}}}}},
		{"bad trunk", Country{Code: "41", Trunk: &Trunk{Code: "O"}, Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: fixed}}}},
		{"bad validator", Country{Code: "41", InvalidNDCPatterns: []string{"("}, Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: fixed}}}},
		{"bad code", Country{Code: "4100", Rules: []Rule{{Matcher: Matcher{Type: MatcherNone}, Splitter: fixed}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.country)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrDefinitionInvalid), "got %v", err)
			assert.True(t, errors.HasErrorCode(err, errors.ErrMalformedRule), "got %v", err)
			assert.Equal(t, tt.country.Code, errors.GetErrorDetails(err)["country"])
		})
	}
}

func TestBuildReportsRuleIndex(t *testing.T) {
	_, err := Build(Country{Code: "41", Rules: []Rule{
		{Matcher: Matcher{Type: MatcherNone}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{2}}},
		{Matcher: Matcher{Type: MatcherRegex, Pattern: `^\d+$`}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{2}}},
	}})
	require.Error(t, err)
	assert.Equal(t, 1, errors.GetErrorDetails(err)["rule"])
	assert.True(t, strings.Contains(err.Error(), "rule 1"))
}

func TestRegisterStopsAtDuplicate(t *testing.T) {
	doc, err := Parse([]byte(`
countries:
  - code: "45"
    rules: [{matcher: {type: none}, splitter: {type: fixed, sizes: [8]}}]
  - code: "45"
    name: Second
    rules: [{matcher: {type: none}, splitter: {type: fixed, sizes: [2, 2, 2, 2]}}]
`), FormatYAML)
	require.NoError(t, err)

	countries := registry.NewCountries()
	n, err := Register(countries, doc)
	assert.Equal(t, 1, n)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateCountry))

	kept, ok := countries.Lookup("45")
	require.True(t, ok)
	assert.Equal(t, "", kept.Name())
}

func TestRegexSplitterEmptyFallback(t *testing.T) {
	toml := `
[[countries]]
code = "41"

[[countries.rules]]
matcher = { type = "fixed", length = 2 }
splitter = { type = "regex", patterns = [{ pattern = '^9', sizes = [3] }], fallback = [] }
`
	yaml := `
countries:
  - code: "41"
    rules:
      - matcher: {type: fixed, length: 2}
        splitter: {type: regex, patterns: [{pattern: "^9", sizes: [3]}], fallback: []}
`
	for format, data := range map[Format]string{FormatTOML: toml, FormatYAML: yaml} {
		t.Run(string(format), func(t *testing.T) {
			doc, err := Parse([]byte(data), format)
			require.NoError(t, err)
			require.NotNil(t, doc.Countries[0].Rules[0].Splitter.Fallback)

			rule, err := Build(doc.Countries[0])
			require.NoError(t, err)

			got, err := rule.Decompose("441234")
			require.NoError(t, err)
			assert.Equal(t, "44", got.NDC)
			assert.Equal(t, []string{"1234"}, got.Groups)
		})
	}

	rule, err := Build(Country{Code: "41", Rules: []Rule{{
		Matcher:  Matcher{Type: MatcherFixed, Length: 2},
		Splitter: Splitter{Type: SplitterRegex, Patterns: []SplitPattern{{Pattern: "^9", Sizes: []any{3}}}},
	}}})
	require.NoError(t, err)
	_, err = rule.Decompose("441234")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSplitRule), "got %v", err)
}

func TestValidatorOrder(t *testing.T) {
	rule, err := Build(Country{
		Code:               "41",
		InvalidNDCPatterns: []string{`8\d`, `80`},
		InvalidNDCs:        []string{"81", "80"},
		Rules:              []Rule{{Matcher: Matcher{Type: MatcherFixed, Length: 2}, Splitter: Splitter{Type: SplitterFixed, Sizes: []any{4}}}},
	})
	require.NoError(t, err)

	names := make([]string, 0, 4)
	for _, v := range rule.Validators() {
		names = append(names, v.String())
	}
	assert.Equal(t, []string{"81", "80", `/8\d/`, "/80/"}, names)

	_, err = rule.Decompose("801234")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidNDC), "got %v", err)
	assert.Equal(t, "80", errors.GetErrorDetails(err)["validator"])
}
