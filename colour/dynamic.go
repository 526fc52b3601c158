package colour

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/PerformLine/go-stockutil/sliceutil"
	"github.com/PerformLine/go-stockutil/typeutil"
	"github.com/pkg/errors"
)

// The *Value functions accept values whose type is only known at run time,
// such as fields of a decoded YAML or JSON document. They report
// ErrTypeInput for arguments of the wrong kind and otherwise behave like
// their typed counterparts.

func ParseValue(v any) (Triple, error) {
	text, err := textOf(v)
	if err != nil {
		return Triple{}, err
	}
	return Parse(text)
}

// TextValue accepts any array or slice of exactly three integers.
func TextValue(v any) (string, error) {
	if v == nil || !typeutil.IsArray(v) {
		return "", errors.Wrapf(ErrTypeInput, "expected a channel triple, got %T", v)
	}
	elems := sliceutil.Sliceify(v)
	if len(elems) != len(Triple{}) {
		return "", errors.Wrapf(ErrTypeInput, "expected 3 channels, got %d", len(elems))
	}

	var t Triple
	for i, e := range elems {
		if !isInteger(e) {
			return "", errors.Wrapf(ErrTypeInput, "channel %d is %T, not an integer", i, e)
		}
		t[i] = int(typeutil.Int(e))
	}
	return ToText(t)
}

func AddValues(vs ...any) (string, error) {
	texts, err := textsOf(vs)
	if err != nil {
		return "", err
	}
	return Add(texts[0], texts[1:]...)
}

func AverageValues(vs ...any) (string, error) {
	texts, err := textsOf(vs)
	if err != nil {
		return "", err
	}
	return Average(texts[0], texts[1:]...)
}

func MultiplyValue(c, k any) (string, error) {
	text, factor, err := colourAndFactor(c, k)
	if err != nil {
		return "", err
	}
	return Multiply(text, factor)
}

func DivideValue(c, k any) (string, error) {
	text, factor, err := colourAndFactor(c, k)
	if err != nil {
		return "", err
	}
	return Divide(text, factor)
}

func colourAndFactor(c, k any) (string, float64, error) {
	text, err := textOf(c)
	if err != nil {
		return "", 0, err
	}
	if k == nil || !(isInteger(k) || isFloat(k)) {
		return "", 0, errors.Wrapf(ErrTypeInput, "factor must be a number, got %T", k)
	}
	return text, typeutil.Float(k), nil
}

func textOf(v any) (string, error) {
	if v == nil || !isText(v) {
		return "", errors.Wrapf(ErrTypeInput, "expected colour text, got %T", v)
	}
	return typeutil.String(v), nil
}

// textsOf checks every argument before any is parsed and names all the
// offending positions.
func textsOf(vs []any) ([]string, error) {
	if len(vs) == 0 {
		return nil, errors.Wrap(ErrTypeInput, "at least one colour is required")
	}

	texts := make([]string, len(vs))
	var bad []string
	for i, v := range vs {
		if v == nil || !isText(v) {
			bad = append(bad, fmt.Sprintf("argument %d is %T", i+1, v))
			continue
		}
		texts[i] = typeutil.String(v)
	}
	if len(bad) > 0 {
		return nil, errors.Wrap(ErrTypeInput, strings.Join(bad, "; "))
	}
	return texts, nil
}

var integerKinds = []reflect.Kind{
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
}

func isText(v any) bool    { return typeutil.IsKind(v, reflect.String) }
func isInteger(v any) bool { return typeutil.IsKind(v, integerKinds...) }
func isFloat(v any) bool   { return typeutil.IsKind(v, reflect.Float32, reflect.Float64) }
