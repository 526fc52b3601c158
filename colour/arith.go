package colour

import (
	"math"

	"github.com/pkg/errors"
)

// Add sums the channels of every colour and saturates each at MaxChannel.
func Add(c string, more ...string) (string, error) {
	var sum Triple
	for _, text := range append([]string{c}, more...) {
		t, err := Parse(text)
		if err != nil {
			return "", err
		}
		for i := range sum {
			sum[i] += t[i]
		}
	}
	for i := range sum {
		sum[i] = min(sum[i], MaxChannel)
	}
	return ToText(sum)
}

// Multiply scales every channel of c by k. Channels are rounded half up and
// clamped to [0, MaxChannel], so a negative factor gives black.
func Multiply(c string, k float64) (string, error) {
	if err := checkFactor(k); err != nil {
		return "", err
	}
	t, err := Parse(c)
	if err != nil {
		return "", err
	}
	return ToText(t.scale(k))
}

// Divide is Multiply(c, 1/k).
func Divide(c string, k float64) (string, error) {
	if err := checkFactor(k); err != nil {
		return "", err
	}
	if k == 0 {
		return "", errors.Wrapf(ErrDivideByZero, "divide %q", c)
	}
	return Multiply(c, 1/k)
}

// Average divides each colour by the number of colours and adds the
// quotients. Each quotient is rounded on its own, so the result can differ
// by a step from rounding the exact mean.
func Average(c string, more ...string) (string, error) {
	all := append([]string{c}, more...)
	n := float64(len(all))

	parts := make([]string, len(all))
	for i, text := range all {
		part, err := Divide(text, n)
		if err != nil {
			return "", err
		}
		parts[i] = part
	}
	return Add(parts[0], parts[1:]...)
}

// Mix blends a towards b. A weight of 0 gives a, 1 gives b.
func Mix(a, b string, weight float64) (string, error) {
	if err := checkFactor(weight); err != nil {
		return "", err
	}
	if weight < 0 || weight > 1 {
		return "", errors.Wrapf(ErrTypeInput, "mix weight %v outside [0,1]", weight)
	}
	left, err := Multiply(a, 1-weight)
	if err != nil {
		return "", err
	}
	right, err := Multiply(b, weight)
	if err != nil {
		return "", err
	}
	return Add(left, right)
}

func checkFactor(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return errors.Wrapf(ErrTypeInput, "factor %v is not a finite number", k)
	}
	return nil
}
