package colour

import (
	"fmt"

	"github.com/pkg/errors"
)

// ToText formats t as rgb(R,G,B). The result is parsed back before it is
// returned and ErrInvalidTriple is reported if that does not reproduce t,
// which rejects negative channels and channels of four or more digits.
// Channels from 256 to 999 survive the round trip and are kept.
func ToText(t Triple) (string, error) {
	text := fmt.Sprintf("rgb(%d,%d,%d)", t[0], t[1], t[2])

	got, ok, err := parseFunctional(text)
	if !ok || err != nil || got != t {
		return "", errors.Wrapf(ErrInvalidTriple, "[%s]", t)
	}
	return text, nil
}

// MustText is like ToText but panics on error.
func MustText(t Triple) string {
	text, err := ToText(t)
	if err != nil {
		panic(err)
	}
	return text
}
