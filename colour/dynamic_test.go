package colour

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	got, err := ParseValue("#F0a")
	require.NoError(t, err)
	assert.Equal(t, Triple{255, 0, 170}, got)

	for _, v := range []any{42, nil, 1.5, []string{"red"}} {
		_, err := ParseValue(v)
		assert.True(t, errors.Is(err, ErrTypeInput), "%#v", v)
	}
}

func TestValueKinds(t *testing.T) {
	assert.True(t, isText("red"))
	assert.False(t, isText(42))
	assert.True(t, isInteger(42))
	assert.True(t, isInteger(uint8(7)))
	assert.False(t, isInteger("red"))
	assert.False(t, isInteger(2.5))
	assert.True(t, isFloat(2.5))
	assert.False(t, isFloat("2.5"))
}

func TestTextValue(t *testing.T) {
	got, err := TextValue([]int{255, 0, 10})
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,0,10)", got)

	got, err = TextValue([3]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "rgb(1,2,3)", got)

	for _, v := range []any{"notanarray", nil, 7, []int{1, 2}, []any{1, "2", 3}} {
		_, err := TextValue(v)
		assert.True(t, errors.Is(err, ErrTypeInput), "%#v", v)
	}

	_, err = TextValue([]int{-5, 0, 0})
	assert.True(t, errors.Is(err, ErrInvalidTriple))

	for _, v := range []any{[]string{"1", "2", "3"}, []float64{1, 2, 3}, []any{1, 2, nil}} {
		_, err := TextValue(v)
		assert.True(t, errors.Is(err, ErrTypeInput), "%#v", v)
	}

	got, err = TextValue([]int64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, "rgb(10,20,30)", got)
}

func TestAddValues(t *testing.T) {
	got, err := AddValues("red", "blue")
	require.NoError(t, err)
	assert.Equal(t, "rgb(255,0,255)", got)

	_, err = AddValues("red", 42, "blue", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeInput))
	assert.Contains(t, err.Error(), "argument 2")
	assert.Contains(t, err.Error(), "argument 4")

	_, err = AddValues()
	assert.True(t, errors.Is(err, ErrTypeInput))
}

func TestAverageValues(t *testing.T) {
	got, err := AverageValues("red", "blue")
	require.NoError(t, err)
	assert.Equal(t, "rgb(128,0,128)", got)

	_, err = AverageValues(1, 2)
	assert.True(t, errors.Is(err, ErrTypeInput))
}

func TestMultiplyDivideValue(t *testing.T) {
	got, err := MultiplyValue("#110022", 2)
	require.NoError(t, err)
	assert.Equal(t, "rgb(34,0,68)", got)

	got, err = DivideValue("red", 2.0)
	require.NoError(t, err)
	assert.Equal(t, "rgb(128,0,0)", got)

	got, err = MultiplyValue("red", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "rgb(128,0,0)", got)

	_, err = MultiplyValue("red", "2")
	assert.True(t, errors.Is(err, ErrTypeInput))

	_, err = DivideValue(3, 2)
	assert.True(t, errors.Is(err, ErrTypeInput))

	_, err = DivideValue("red", 0)
	assert.True(t, errors.Is(err, ErrDivideByZero))
}
