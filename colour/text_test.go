package colour

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToText(t *testing.T) {
	got, err := ToText(Triple{255, 0, 10})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,0,10)", got)
}

func TestToTextInvalid(t *testing.T) {
	for _, tr := range []Triple{
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, 1000},
	} {
		_, err := ToText(tr)
		require.Error(t, err, "%v", tr)
		assert.True(t, errors.Is(err, ErrInvalidTriple), "got %v", err)
		assert.False(t, errors.Is(err, ErrNotRecognised))
	}
}

func TestToTextKeepsThreeDigitChannels(t *testing.T) {
	got, err := ToText(Triple{256, 0, 999})
	require.NoError(t, err)
	assert.Equal(t, "rgb(256,0,999)", got)

	back, err := Parse(got)
	require.NoError(t, err)
	assert.Equal(t, Triple{256, 0, 999}, back)
}

func TestRoundTrip(t *testing.T) {
	for v := 0; v <= MaxChannel; v++ {
		for _, tr := range []Triple{{v, 0, 0}, {0, v, 0}, {0, 0, v}, {v, MaxChannel - v, v / 2}} {
			text, err := ToText(tr)
			require.NoError(t, err)
			back, err := Parse(text)
			require.NoError(t, err)
			assert.Equal(t, tr, back)
		}
	}
}

func TestTripleHelpers(t *testing.T) {
	tr := Triple{255, 0, 170}
	assert.Equal(t, 255, tr.R())
	assert.Equal(t, 0, tr.G())
	assert.Equal(t, 170, tr.B())
	assert.Equal(t, "#ff00aa", tr.Hex())
	assert.Equal(t, "255,0,170", tr.String())
	assert.True(t, tr.Valid())
	assert.False(t, Triple{0, 0, 256}.Valid())
}

func TestMustText(t *testing.T) {
	assert.Equal(t, "rgb(1,2,3)", MustText(Triple{1, 2, 3}))
	assert.Panics(t, func() { MustText(Triple{-1, 2, 3}) })
}
