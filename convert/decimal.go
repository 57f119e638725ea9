package convert

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// DecimalToBinary returns the shortest binary digit-string of n.
// Zero maps to "0", never to the empty string.
func DecimalToBinary(n uint64) string {
	if n == 0 {
		return "0"
	}
	var digits [64]byte
	i := len(digits)
	for n > 0 {
		// remainders come out least-significant first, so fill from the back
		i--
		digits[i] = '0' + byte(n%2)
		n /= 2
	}
	return string(digits[i:])
}

// DecimalToBinaryBig is DecimalToBinary for integers of any size.
func DecimalToBinaryBig(n *big.Int) (string, error) {
	switch n.Sign() {
	case -1:
		return "", errors.Wrapf(ErrNegative, "%s", n)
	case 0:
		return "0", nil
	}

	two := big.NewInt(2)
	q := new(big.Int).Set(n)
	r := new(big.Int)
	digits := make([]byte, 0, n.BitLen())
	for q.Sign() > 0 {
		q.QuoRem(q, two, r)
		digits = append(digits, '0'+byte(r.Uint64()))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// ParseDecimal parses a non-negative base-10 integer.
func ParseDecimal(text string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return nil, errors.Wrapf(ErrNotInteger, "%q", text)
	}
	if n.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "%s", n)
	}
	return n, nil
}

// DecimalTextToBinary parses text and converts it, staying on uint64
// whenever the value fits.
func DecimalTextToBinary(text string) (string, error) {
	n, err := ParseDecimal(text)
	if err != nil {
		return "", err
	}
	if n.IsUint64() {
		return DecimalToBinary(n.Uint64()), nil
	}
	return DecimalToBinaryBig(n)
}
