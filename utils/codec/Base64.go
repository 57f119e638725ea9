package codec

import "encoding/base64"

// Base64Encoding encodes text with the standard alphabet, '=' padded.
func Base64Encoding(text []byte) []byte {
	buf := make([]byte, base64.StdEncoding.EncodedLen(len(text)))
	base64.StdEncoding.Encode(buf, text)
	return buf
}

// Base64Decoding is the strict inverse of Base64Encoding: non-zero
// trailing bits and embedded newlines are rejected.
func Base64Decoding(text []byte) ([]byte, error) {
	buf := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Strict().Decode(buf, text)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
