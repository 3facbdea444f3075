// Package bintext converts byte sequences to and from their Base64 and hex text forms.
package bintext

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeBase64 returns standard (RFC 4648) Base64 text with '=' padding
func EncodeBase64(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	text := make([]byte, encodedBase64Len(len(data)))
	base64.StdEncoding.Encode(text, data)
	return string(text)
}

// DecodeBase64 decodes padded standard Base64 text, line breaks and unpadded input are rejected
func DecodeBase64(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	if index := strings.IndexAny(text, "\r\n"); index != -1 {
		return nil, fmt.Errorf("invalid base64 text: line break at %d", index)
	}
	if len(text)%4 != 0 {
		return nil, fmt.Errorf("invalid base64 text: length %d is not a multiple of 4", len(text))
	}
	data, err := base64.StdEncoding.Strict().DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 text: %w", err)
	}
	return data, nil
}

// encodedBase64Len returns length of padded Base64 text for n bytes
func encodedBase64Len(n int) int {
	return base64.StdEncoding.EncodedLen(n)
}

// EncodeHex returns two hex digits per byte, most significant nibble first
func EncodeHex(data []byte, upper bool) string {
	if len(data) == 0 {
		return ""
	}
	text := hex.EncodeToString(data)
	if upper {
		return strings.ToUpper(text)
	}
	return text
}

// DecodeHex decodes hex text in either case
func DecodeHex(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("invalid hex text: odd length %d", len(text))
	}
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex text: %w", err)
	}
	return data, nil
}
