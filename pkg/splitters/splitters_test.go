package splitters

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSplit(t *testing.T) {
	tests := []struct {
		name   string
		sizes  []Size
		digits string
		want   []string
	}{
		{"exact supply", Exacts(2, 2, 2, 2), "12345678", []string{"12", "34", "56", "78"}},
		{"over supply adds trailing group", Exacts(3, 2), "1234567", []string{"123", "45", "67"}},
		{"under supply shortens last group", Exacts(3, 2, 2), "12345", []string{"123", "45"}},
		{"under supply mid group", Exacts(3, 3), "12345", []string{"123", "45"}},
		{"range takes its maximum", []Size{Range(2, 3), Exact(2)}, "123456", []string{"123", "45", "6"}},
		{"range takes what remains", []Size{Exact(3), Range(2, 4)}, "123456", []string{"123", "456"}},
		{"range below minimum absorbs rest", []Size{Exact(3), Range(3, 4)}, "12345", []string{"123", "45"}},
		{"no sizes yields one group", nil, "1234", []string{"1234"}},
		{"empty input yields no groups", Exacts(2, 2), "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFixed(tt.sizes...)
			require.NoError(t, err)

			got, err := s.Split(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixedSplitIsLossless(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const digits = "0123456789012345678901234567890"

	for i := 0; i < 500; i++ {
		sizes := make([]Size, rng.Intn(6))
		for j := range sizes {
			min := rng.Intn(4)
			sizes[j] = Range(min, min+1+rng.Intn(3))
		}
		input := digits[:rng.Intn(len(digits))]

		s, err := NewFixed(sizes...)
		require.NoError(t, err)

		groups, err := s.Split(input)
		require.NoError(t, err)
		assert.Equal(t, input, strings.Join(groups, ""), "sizes %v", sizes)
		for _, g := range groups {
			assert.NotEmpty(t, g, "sizes %v input %q", sizes, input)
		}
	}
}

func TestFixedRejectsInvalidSizes(t *testing.T) {
	for _, size := range []Size{{Min: 0, Max: 0}, {Min: 3, Max: 2}, {Min: -1, Max: 2}} {
		_, err := NewFixed(Exact(2), size)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule), "size %v", size)
	}
}

func TestRegexSplit(t *testing.T) {
	s, err := NewRegex([]Rule{
		{Pattern: `^[1].*`, Sizes: Exacts(3)},
		{Pattern: `^[489].*`, Sizes: Exacts(3, 2, 3)},
	}, WithFallback(Exacts(2, 2, 2, 2)...))
	require.NoError(t, err)

	tests := []struct {
		digits string
		want   []string
	}{
		{"41234567", []string{"412", "34", "567"}},
		{"1234", []string{"123", "4"}},
		{"91234567", []string{"912", "34", "567"}},
		{"51234567", []string{"51", "23", "45", "67"}},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			got, err := s.Split(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegexSplitFirstRuleWins(t *testing.T) {
	s, err := NewRegex([]Rule{
		{Pattern: `^4`, Sizes: Exacts(1)},
		{Pattern: `^41`, Sizes: Exacts(2)},
	})
	require.NoError(t, err)

	got, err := s.Split("4123")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "123"}, got)
}

func TestRegexSplitWithoutFallback(t *testing.T) {
	s, err := NewRegex([]Rule{{Pattern: `^1`, Sizes: Exacts(3)}})
	require.NoError(t, err)

	_, err = s.Split("2345")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSplitRule))
	assert.Equal(t, "2345", errors.GetErrorDetails(err)["digits"])

	_, ok := s.Fallback()
	assert.False(t, ok)
}

func TestRegexDefinitionErrors(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		_, err := NewRegex(nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule))
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := NewRegex([]Rule{{Pattern: `^[1`, Sizes: Exacts(3)}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule))
	})

	t.Run("bad sizes", func(t *testing.T) {
		_, err := NewRegex([]Rule{{Pattern: `^1`, Sizes: []Size{Range(4, 2)}}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule))
	})

	t.Run("bad fallback", func(t *testing.T) {
		_, err := NewRegex(nil, WithFallback(Exact(0)))
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule))
	})
}

func TestRegexAccessorsCopy(t *testing.T) {
	rules := []Rule{{Pattern: `^1`, Sizes: Exacts(3)}}
	s, err := NewRegex(rules, WithFallback(Exact(4)))
	require.NoError(t, err)

	rules[0].Sizes[0] = Exact(9)
	assert.Equal(t, Exacts(3), s.Rules()[0].Sizes)

	fallback, ok := s.Fallback()
	require.True(t, ok)
	assert.Equal(t, Exacts(4), fallback)
	assert.Equal(t, "regex{/^1/ => [3], fallback => [4]}", s.String())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		text    string
		want    Size
		wantErr bool
	}{
		{"3", Exact(3), false},
		{" 3 ", Exact(3), false},
		{"3-4", Range(3, 4), false},
		{"3..4", Range(3, 4), false},
		{"0-2", Range(0, 2), false},
		{"4-3", Size{}, true},
		{"x", Size{}, true},
		{"3-", Size{}, true},
		{"0", Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSize(tt.text)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "3", Exact(3).String())
	assert.Equal(t, "2-4", Range(2, 4).String())
	assert.Equal(t, "fixed[3,2-4]", mustFixed(t, Exact(3), Range(2, 4)).String())
}

func mustFixed(t *testing.T, sizes ...Size) *Fixed {
	t.Helper()
	s, err := NewFixed(sizes...)
	require.NoError(t, err)
	return s
}
