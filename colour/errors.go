package colour

import "github.com/pkg/errors"

var (
	// ErrTypeInput is returned when an argument has the wrong shape: a
	// non-text colour, a triple that is not three integers, or a factor
	// that is not a finite number.
	ErrTypeInput = errors.New("invalid input type")

	// ErrNotRecognised is returned when text matches none of the accepted
	// colour forms.
	ErrNotRecognised = errors.New("colour not recognised")

	// ErrInvalidTriple is returned when a triple does not survive a round
	// trip through its own text form.
	ErrInvalidTriple = errors.New("invalid colour triple")

	// ErrDivideByZero is returned by Divide for a zero factor.
	ErrDivideByZero = errors.New("division by zero")
)
