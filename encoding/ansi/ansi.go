// Package ansi transcodes text between a legacy single-byte codepage ("ANSI"),
// UTF-8 strings and wide (code point or UTF-16) text.
package ansi

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCodepage is the legacy codepage used when none is configured
const DefaultCodepage = "windows-1251"

// Codepage represents a single-byte legacy codepage
type Codepage struct {
	name    string
	charmap *charmap.Charmap
}

// Name returns codepage name
func (c *Codepage) Name() string {
	return c.name
}

// Decode converts legacy encoded bytes to UTF-8 text
func (c *Codepage) Decode(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	result, err := c.charmap.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s text: %w", c.name, err)
	}
	return string(result), nil
}

// Encode converts UTF-8 text to legacy encoded text, characters outside the codepage are
// replaced with the codepage substitution byte
func (c *Codepage) Encode(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	result, err := encoding.ReplaceUnsupported(c.charmap.NewEncoder()).String(text)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s text: %w", c.name, err)
	}
	return result, nil
}

// Lookup returns a codepage for WHATWG label (i.e. cp1251) or IANA name
func Lookup(name string) (*Codepage, error) {
	if name == "" {
		name = DefaultCodepage
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		if enc, err = ianaindex.IANA.Encoding(name); err != nil {
			return nil, fmt.Errorf("unknown codepage %q: %w", name, err)
		}
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported codepage %q", name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("codepage %q is not a single-byte encoding", name)
	}
	canonical := strings.ToLower(name)
	if htmlName, err := htmlindex.Name(enc); err == nil {
		canonical = htmlName
	}
	return &Codepage{name: canonical, charmap: cm}, nil
}

// ToWide converts UTF-8 text to code points
func ToWide(text string) []rune {
	return []rune(text)
}

// FromWide converts code points to UTF-8 text
func FromWide(wide []rune) string {
	return string(wide)
}

// ToUTF16 converts UTF-8 text to UTF-16 code units
func ToUTF16(text string) []uint16 {
	return utf16.Encode([]rune(text))
}

// FromUTF16 converts UTF-16 code units to UTF-8 text
func FromUTF16(wide []uint16) string {
	return string(utf16.Decode(wide))
}
