package convert

import "strings"

// DisplayWidth is the width binary results are padded to when printed.
const DisplayWidth = 16

// ZeroPad left-pads digits with '0' up to width. Longer input is returned
// unchanged.
func ZeroPad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
