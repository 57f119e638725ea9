package convert

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotInteger is returned when the decimal argument is not a whole number.
	ErrNotInteger = errors.New("not a decimal integer")
	// ErrNegative is returned for integers below zero.
	ErrNegative = errors.New("negative integers are not supported")
)

// InvalidDigitError reports a character outside {'0','1'} in a binary
// digit-string. Pos counts characters, not bytes.
type InvalidDigitError struct {
	Digit rune
	Pos   int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid binary digit %q at position %d", e.Digit, e.Pos)
}
