package colour

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var functionalForm = regexp.MustCompile(`(?i)^rgb\(([0-9]{1,3}), ?([0-9]{1,3}), ?([0-9]{1,3})\)$`)

// Parse converts colour text into a triple. Accepted forms, tried in this
// order, are rgb(R, G, B) with an optional space after each comma and any
// case for "rgb", #RGB, #RRGGBB and a CSS colour keyword in any case.
func Parse(text string) (Triple, error) {
	if t, ok, err := parseFunctional(text); ok {
		return t, err
	}
	if strings.HasPrefix(text, "#") {
		return parseHex(text)
	}
	if t, ok := Lookup(text); ok {
		return t, nil
	}
	return Triple{}, errors.Wrapf(ErrNotRecognised, "%q", text)
}

// parseFunctional reports ok when text has the rgb() shape. Channels are
// taken as written, so rgb(300,0,0) yields 300; arithmetic saturates them.
func parseFunctional(text string) (Triple, bool, error) {
	m := functionalForm.FindStringSubmatch(text)
	if m == nil {
		return Triple{}, false, nil
	}

	var t Triple
	for i, digits := range m[1:] {
		v, err := strconv.Atoi(digits)
		if err != nil {
			return Triple{}, true, errors.Wrapf(ErrNotRecognised, "%q", text)
		}
		t[i] = v
	}
	return t, true, nil
}

func parseHex(text string) (Triple, error) {
	digits := text[1:]

	var width, mul int
	switch len(digits) {
	case 3:
		width, mul = 1, 17
	case 6:
		width, mul = 2, 1
	default:
		return Triple{}, errors.Wrapf(ErrNotRecognised, "%q: hex colour needs 3 or 6 digits", text)
	}

	var t Triple
	for i := range t {
		v, err := strconv.ParseUint(digits[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return Triple{}, errors.Wrapf(ErrNotRecognised, "%q: bad hex digit", text)
		}
		t[i] = int(v) * mul
	}
	return t, nil
}
