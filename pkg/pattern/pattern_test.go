package pattern

import (
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMemoizes(t *testing.T) {
	first, err := Compile(`^[489]\d+`)
	require.NoError(t, err)

	second, err := Compile(`^[489]\d+`)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile(`^(0\d{2}`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedRule))
}

func TestCompileAnchored(t *testing.T) {
	re, err := CompileAnchored(`(1)\d`)
	require.NoError(t, err)

	assert.True(t, re.MatchString("12"))
	assert.False(t, re.MatchString("123"))
	assert.False(t, re.MatchString("012"))
	assert.Equal(t, 1, re.NumSubexp())
}

func TestCompileAnchoredKeepsExplicitAnchors(t *testing.T) {
	re, err := CompileAnchored(`^(0\d{2})\d+$`)
	require.NoError(t, err)

	assert.Equal(t, []string{"0123456789", "012"}, re.FindStringSubmatch("0123456789"))
}
