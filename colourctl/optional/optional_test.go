package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithValue(t *testing.T) {
	steps := 0
	o := WithValue(&steps)
	assert.True(t, o.Valid)
	assert.Equal(t, 0, o.OrElse(12))

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestEmpty(t *testing.T) {
	o := WithValue[string](nil)
	assert.False(t, o.Valid)
	assert.Equal(t, "hex", o.OrElse("hex"))

	_, ok := o.Get()
	assert.False(t, ok)
}
