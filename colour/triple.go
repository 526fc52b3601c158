// Package colour parses, formats and combines RGB colour values written as
// hex triplets, rgb() notation or CSS colour keywords.
package colour

import (
	"fmt"
	"math"
)

const MaxChannel = 255

// Triple is a red, green, blue channel triple.
type Triple [3]int

func (t Triple) R() int { return t[0] }
func (t Triple) G() int { return t[1] }
func (t Triple) B() int { return t[2] }

// Valid reports whether every channel lies in [0, MaxChannel].
func (t Triple) Valid() bool {
	for _, v := range t {
		if v < 0 || v > MaxChannel {
			return false
		}
	}
	return true
}

// Hex returns the #rrggbb form. The result is only meaningful for valid
// triples.
func (t Triple) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", t[0], t[1], t[2])
}

func (t Triple) String() string {
	return fmt.Sprintf("%d,%d,%d", t[0], t[1], t[2])
}

func (t Triple) scale(k float64) Triple {
	var out Triple
	for i, v := range t {
		out[i] = saturate(float64(v) * k)
	}
	return out
}

// saturate rounds half toward positive infinity and clamps to the channel
// range.
func saturate(v float64) int {
	r := math.Floor(v + 0.5)
	switch {
	case r < 0:
		return 0
	case r > MaxChannel:
		return MaxChannel
	}
	return int(r)
}
