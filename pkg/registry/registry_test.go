package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderer func(string) string

func upper(s string) string { return "<" + s + ">" }

func TestRegisterAndGet(t *testing.T) {
	reg := New[renderer]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("angle", upper))
	got, err := reg.Get("angle")
	require.NoError(t, err)
	assert.Equal(t, "<x>", got("x"))

	t.Run("empty name", func(t *testing.T) {
		err := reg.Register("", upper)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("duplicate", func(t *testing.T) {
		err := reg.Register("angle", upper)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := reg.Get("square")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		assert.Equal(t, "square", errors.GetErrorDetails(err)["name"])
	})
}

func TestListAndHas(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"yaml", "json", "xml", "text"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"json", "text", "xml", "yaml"}, reg.List())
	assert.True(t, reg.Has("xml"))
	assert.False(t, reg.Has("csv"))
	assert.Equal(t, 4, reg.Count())
}

func TestConcurrentRegistration(t *testing.T) {
	reg := New[int]()
	const goroutines = 10
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, reg.Register(fmt.Sprintf("g%d_%d", g, i), i))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, reg.Count())
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "one", 1)
	assert.True(t, reg.Has("one"))

	assert.Panics(t, func() { MustRegister(reg, "one", 2) })
}
