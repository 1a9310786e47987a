package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihei9/brilltag/internal/window"
)

func TestAt(t *testing.T) {
	s := []string{"a", "b", "c"}

	v, ok := window.At(s, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = window.At(s, -1)
	assert.False(t, ok)

	_, ok = window.At(s, 3)
	assert.False(t, ok)

	_, ok = window.At[string](nil, 0)
	assert.False(t, ok)
}
