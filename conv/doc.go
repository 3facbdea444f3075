// Package conv provides a configurable, reflection-based type converter.
//
// A conversion is resolved from the (source, destination) type pair, optionally with a virtual
// encoding tag (Ansi, Base64, Hex) selecting how text is interpreted or produced. Resolution goes
// from the most specific strategy to the most generic one: registered pairs (custom, then
// built-in codecs), identity, enums via their integer value, textual scalar parse/format and
// finally slice, map and struct conversions. Every failure is reported as *Error.
package conv
