package convert

import "github.com/thanhpk/randstr"

// RandomBinary returns a random binary digit-string with the given number of digits.
func RandomBinary(digits int) string {
	if digits <= 0 {
		return ""
	}
	return randstr.String(digits, "01")
}
