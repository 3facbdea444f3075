// Package typecast converts values between Go types.
//
// A conversion is requested with the target type as type parameter and an optional virtual
// encoding tag selecting how text is produced or interpreted:
//
//	n, err := typecast.To[int]("42")
//	encoded, err := typecast.Encode(typecast.Base64, []byte("Man"))
//	raw, err := typecast.From[[]byte](typecast.Hex, "ff00")
//
// Defaulting variants (ToOr, FromOr, EncodeOr) return the supplied default instead of an error.
package typecast

import (
	"github.com/viant/typecast/conv"
)

// Tag represents a virtual encoding
type Tag = conv.Tag

// Error represents a conversion failure
type Error = conv.Error

const (
	// None denotes no virtual encoding
	None = conv.None
	// Ansi denotes text in the legacy single-byte codepage
	Ansi = conv.Ansi
	// Base64 denotes standard Base64 text
	Base64 = conv.Base64
	// Hex denotes hex text
	Hex = conv.Hex
)

var std = newDefault()

func newDefault() *conv.Converter {
	converter, err := conv.NewConverter(conv.DefaultOptions())
	if err != nil {
		panic(err)
	}
	return converter
}

// New creates a converter with default options adjusted by opts
func New(opts ...Option) (*conv.Converter, error) {
	options := conv.DefaultOptions()
	Options(opts).Apply(&options)
	return conv.NewConverter(options)
}

// To converts src to T
func To[T any](src interface{}) (T, error) {
	return conv.To[T](std, src)
}

// ToOr converts src to T, it returns def if conversion fails
func ToOr[T any](src interface{}, def T) T {
	return conv.ToOr[T](std, src, def)
}

// From converts src, interpreted as tag encoded text, to T
func From[T any](tag Tag, src interface{}) (T, error) {
	return conv.From[T](std, tag, src)
}

// FromOr converts tag encoded src to T, it returns def if conversion fails
func FromOr[T any](tag Tag, src interface{}, def T) T {
	return conv.FromOr[T](std, tag, src, def)
}

// Encode converts src to tag encoded text
func Encode(tag Tag, src interface{}) (string, error) {
	return std.Encode(tag, src)
}

// EncodeOr converts src to tag encoded text, it returns def if conversion fails
func EncodeOr(tag Tag, src interface{}, def string) string {
	return std.EncodeOr(tag, src, def)
}

// IsError returns true if err carries a conversion failure
func IsError(err error) bool {
	return conv.IsError(err)
}
