package matchers

import (
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	m, err := NewFixed(2, true)
	require.NoError(t, err)

	inputs := []string{"44", "443643533", "7912345678"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := m.Match(input)
			require.True(t, ok)
			assert.Len(t, got.NDC, 2)
			assert.Equal(t, input, got.NDC+got.Rest)
			assert.True(t, got.Zero)
		})
	}

	_, ok := m.Match("4")
	assert.False(t, ok, "shorter than the NDC length")
	assert.Equal(t, KindFixed, m.Kind())
	assert.Equal(t, "fixed(2, zero)", m.String())
}

func TestFixedRejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := NewFixed(length, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule), "length %d", length)
	}
}

func TestNone(t *testing.T) {
	got, ok := NewNone().Match("12345678")
	require.True(t, ok)
	assert.Equal(t, Match{Rest: "12345678"}, got)
	assert.Same(t, NewNone(), NewNone())
}

func TestVariable(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		maxLength  int
		input      string
		wantNDC    string
		wantRest   string
		wantOK     bool
	}{
		{"longest candidate wins", []string{"1", "12"}, 0, "123456", "12", "3456", true},
		{"declaration order is irrelevant", []string{"12", "1"}, 0, "123456", "12", "3456", true},
		{"shorter candidate when longer does not match", []string{"1", "12"}, 0, "134567", "1", "34567", true},
		{"max length keeps shorter candidates", []string{"30", "302"}, 3, "30201234", "302", "01234", true},
		{"no candidate", []string{"30", "40"}, 0, "50123", "", "", false},
		{"candidate equals input", []string{"89"}, 0, "89", "89", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewVariable(tt.candidates, tt.maxLength)
			require.NoError(t, err)

			got, ok := m.Match(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantNDC, got.NDC)
				assert.Equal(t, tt.wantRest, got.Rest)
			}
		})
	}
}

func TestVariableDefinitionErrors(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		maxLength  int
	}{
		{"no candidates", nil, 0},
		{"empty candidate", []string{"1", ""}, 0},
		{"non digit candidate", []string{"1a"}, 0},
		{"negative max length", []string{"1"}, -1},
		{"candidate over max length", []string{"1234"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVariable(tt.candidates, tt.maxLength)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule), "got %v", err)
		})
	}
}

func TestVariableAccessors(t *testing.T) {
	m, err := NewVariable([]string{"89", "30", "30", "221"}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"221", "30", "89"}, m.Candidates())
	assert.Equal(t, 3, m.MaxLength())
	assert.Equal(t, KindVariable, m.Kind())
}

func TestRegex(t *testing.T) {
	m, err := NewRegex(`^(0\d{2})\d+$`)
	require.NoError(t, err)

	got, ok := m.Match("0123456789")
	require.True(t, ok)
	assert.Equal(t, "012", got.NDC)
	assert.Equal(t, "3456789", got.Rest)
	assert.False(t, got.Fallback)

	_, ok = m.Match("1123456789")
	assert.False(t, ok)
}

func TestRegexMustMatchWholeInput(t *testing.T) {
	m, err := NewRegex(`(7\d)\d{3}`)
	require.NoError(t, err)

	_, ok := m.Match("7912345")
	assert.False(t, ok, "pattern only covers five digits")

	got, ok := m.Match("79123")
	require.True(t, ok)
	assert.Equal(t, "79", got.NDC)
}

func TestRegexCaptureNotAtStart(t *testing.T) {
	m, err := NewRegex(`\d(\d{2})\d+`)
	require.NoError(t, err)

	_, ok := m.Match("912345")
	assert.False(t, ok, "the NDC must be a prefix")

	withFallback, err := NewRegex(`\d(\d{2})\d+`, OnFailTake(2))
	require.NoError(t, err)

	got, ok := withFallback.Match("912345")
	require.True(t, ok)
	assert.True(t, got.Fallback)
	assert.Equal(t, "91", got.NDC)
	assert.Equal(t, "912345", got.NDC+got.Rest)
}

func TestRegexKeepsDigitOrder(t *testing.T) {
	patterns := []string{`^(0\d{2})\d+$`, `(7\d)\d{3}`, `(800)?\d+`, `(?:00)?(1\d)\d+`}
	inputs := []string{"0123456789", "79123", "1234", "8001234", "12345", "0012345"}

	for _, expr := range patterns {
		m, err := NewRegex(expr)
		require.NoError(t, err)
		for _, in := range inputs {
			if got, ok := m.Match(in); ok {
				assert.Equal(t, in, got.NDC+got.Rest, "%s on %s", expr, in)
			}
		}
	}
}

func TestRegexOptionalGroup(t *testing.T) {
	m, err := NewRegex(`(800)?\d+`)
	require.NoError(t, err)

	got, ok := m.Match("1234")
	require.True(t, ok)
	assert.Equal(t, "", got.NDC)
	assert.Equal(t, "1234", got.Rest)
}

func TestRegexFallback(t *testing.T) {
	t.Run("take digits", func(t *testing.T) {
		m, err := NewRegex(`(1\d)\d+`, OnFailTake(3))
		require.NoError(t, err)

		got, ok := m.Match("2345678")
		require.True(t, ok)
		assert.Equal(t, Match{NDC: "234", Rest: "5678", Fallback: true}, got)
		assert.Equal(t, 3, m.Fallback().Take)
	})

	t.Run("empty ndc", func(t *testing.T) {
		m, err := NewRegex(`(1\d)\d+`, OnFailTake(0))
		require.NoError(t, err)

		got, ok := m.Match("2345678")
		require.True(t, ok)
		assert.Equal(t, Match{Rest: "2345678", Fallback: true}, got)
	})

	t.Run("input shorter than fallback", func(t *testing.T) {
		m, err := NewRegex(`(1\d)\d+`, OnFailTake(3))
		require.NoError(t, err)

		_, ok := m.Match("23")
		assert.False(t, ok)
	})

	t.Run("no fallback propagates failure", func(t *testing.T) {
		m, err := NewRegex(`(1\d)\d+`)
		require.NoError(t, err)

		_, ok := m.Match("2345678")
		assert.False(t, ok)
		assert.Nil(t, m.Fallback())
	})
}

func TestRegexDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		opts []RegexOption
	}{
		{"no capture group", `^0\d+$`, nil},
		{"two capture groups", `^(0)(\d+)$`, nil},
		{"invalid syntax", `^(0\d+$`, nil},
		{"negative fallback", `^(0)\d+$`, []RegexOption{OnFailTake(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegex(tt.expr, tt.opts...)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule), "got %v", err)
		})
	}
}

func TestNonCapturingGroupsAreAllowed(t *testing.T) {
	m, err := NewRegex(`(?:00)?(1\d)\d+`)
	require.NoError(t, err)

	got, ok := m.Match("12345")
	require.True(t, ok)
	assert.Equal(t, "12", got.NDC)
	assert.Equal(t, "345", got.Rest)
	assert.Equal(t, KindRegex, m.Kind())

	_, ok = m.Match("0012345")
	assert.False(t, ok, "leading digits outside the group")
}
