package convert

import (
	"fmt"
	"strconv"
	"strings"

	"baseconv/utils/codec"

	"github.com/pkg/errors"
)

// ValidateBinary rejects any character other than '0' and '1'.
func ValidateBinary(s string) error {
	pos := 0
	for _, c := range s {
		if c != '0' && c != '1' {
			return &InvalidDigitError{Digit: c, Pos: pos}
		}
		pos++
	}
	return nil
}

// PadToByte front-pads s with '0' until its length is a multiple of 8.
func PadToByte(s string) string {
	if r := len(s) % 8; r != 0 {
		return strings.Repeat("0", 8-r) + s
	}
	return s
}

// BinaryToBytes groups a binary digit-string into bytes, most-significant
// chunk first.
func BinaryToBytes(s string) ([]byte, error) {
	if err := ValidateBinary(s); err != nil {
		return nil, err
	}
	s = PadToByte(s)
	out := make([]byte, 0, len(s)/8)
	for i := 0; i < len(s); i += 8 {
		b, err := strconv.ParseUint(s[i:i+8], 2, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(b))
	}
	return out, nil
}

// BinaryToBase64 returns the standard Base64 encoding of the bytes
// spelled out by s. The empty string encodes to the empty string.
func BinaryToBase64(s string) (string, error) {
	raw, err := BinaryToBytes(s)
	if err != nil {
		return "", err
	}
	return string(codec.Base64Encoding(raw)), nil
}

// Base64ToBinary decodes standard Base64 text and writes every byte as an
// 8-digit chunk.
func Base64ToBinary(text string) (string, error) {
	raw, err := codec.Base64Decoding([]byte(text))
	if err != nil {
		return "", errors.Wrapf(err, "decode %q", text)
	}
	var sb strings.Builder
	sb.Grow(len(raw) * 8)
	for _, b := range raw {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String(), nil
}
