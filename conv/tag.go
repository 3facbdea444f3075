package conv

import (
	"fmt"
	"reflect"
	"strings"
)

// Tag represents a virtual type selecting text encoding, its associated real type is always string
type Tag int

const (
	// None denotes no virtual tag
	None Tag = iota
	// Ansi denotes text in the legacy single-byte codepage
	Ansi
	// Base64 denotes standard Base64 text
	Base64
	// Hex denotes hex text
	Hex
)

var stringType = reflect.TypeOf("")

// Type returns the real type associated with the tag
func (t Tag) Type() reflect.Type {
	return stringType
}

// String returns tag name
func (t Tag) String() string {
	switch t {
	case None:
		return "none"
	case Ansi:
		return "ansi"
	case Base64:
		return "base64"
	case Hex:
		return "hex"
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// MarshalText returns tag name
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses tag name
func (t *Tag) UnmarshalText(text []byte) error {
	tag, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}

// ParseTag returns tag for a case insensitive name
func ParseTag(name string) (Tag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw":
		return None, nil
	case "ansi":
		return Ansi, nil
	case "base64":
		return Base64, nil
	case "hex":
		return Hex, nil
	}
	return None, fmt.Errorf("unknown encoding tag: %q", name)
}
