package conv

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/viant/typecast/encoding/ansi"
	"github.com/viant/typecast/encoding/bintext"
	"github.com/viant/typecast/encoding/bitset"
	ftime "github.com/viant/typecast/format/time"
)

// builtins holds specialized strategies, it is populated once in init and read-only afterwards
var builtins = map[typeKey]ConversionFunc{}

func register(src, dest endpoint, fn ConversionFunc) {
	builtins[typeKey{src: src, dest: dest}] = fn
}

func realType(t reflect.Type) endpoint {
	return endpoint{rType: t}
}

func virtualTag(tag Tag) endpoint {
	return endpoint{tag: tag}
}

func init() {
	for _, rType := range []reflect.Type{bytesType, stringType} {
		register(realType(rType), virtualTag(Base64), encodeBase64)
		register(virtualTag(Base64), realType(rType), decodeBase64)
		register(realType(rType), virtualTag(Hex), encodeHex)
		register(virtualTag(Hex), realType(rType), decodeHex)
	}

	for _, rType := range []reflect.Type{stringType, runesType, utf16Type} {
		register(realType(rType), virtualTag(Ansi), encodeAnsi)
		register(virtualTag(Ansi), realType(rType), decodeAnsi)
	}

	register(realType(bytesType), realType(stringType), bytesToString)
	register(realType(stringType), realType(bytesType), stringToBytes)
	register(realType(runesType), realType(stringType), wideToString)
	register(realType(utf16Type), realType(stringType), wideToString)
	register(realType(stringType), realType(runesType), stringToRunes)
	register(realType(stringType), realType(utf16Type), stringToUTF16)

	registerBitset[uint]()
	registerBitset[uint8]()
	registerBitset[uint16]()
	registerBitset[uint32]()
	registerBitset[uint64]()

	register(realType(timeType), realType(int64Type), timeToMillis)
	register(realType(timeType), realType(uint64Type), timeToUnsignedMillis)
	register(realType(int64Type), realType(timeType), millisToTime)
	register(realType(uint64Type), realType(timeType), unsignedMillisToTime)
	register(realType(timeType), realType(stringType), timeToString)
	register(realType(stringType), realType(timeType), stringToTime)

	register(realType(durationType), realType(stringType), durationToString)
	register(realType(stringType), realType(durationType), stringToDuration)
}

func asBytes(src interface{}) ([]byte, error) {
	switch actual := src.(type) {
	case []byte:
		return actual, nil
	case string:
		return []byte(actual), nil
	}
	return nil, fmt.Errorf("%w: %T is not a byte sequence", ErrUnsupported, src)
}

func asText(src interface{}) (string, error) {
	switch actual := src.(type) {
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	case []rune:
		return ansi.FromWide(actual), nil
	case []uint16:
		return ansi.FromUTF16(actual), nil
	}
	return "", fmt.Errorf("%w: %T is not a text", ErrUnsupported, src)
}

func setBytes(dest interface{}, data []byte) error {
	switch actual := dest.(type) {
	case *[]byte:
		*actual = data
	case *string:
		*actual = string(data)
	default:
		return fmt.Errorf("%w: %T is not a byte sequence", ErrUnsupported, dest)
	}
	return nil
}

func setText(dest interface{}, text string) error {
	switch actual := dest.(type) {
	case *string:
		*actual = text
	case *[]byte:
		*actual = []byte(text)
	case *[]rune:
		*actual = ansi.ToWide(text)
	case *[]uint16:
		*actual = ansi.ToUTF16(text)
	default:
		return fmt.Errorf("%w: %T is not a text", ErrUnsupported, dest)
	}
	return nil
}

func encodeBase64(src, dest interface{}, _ Options) error {
	data, err := asBytes(src)
	if err != nil {
		return err
	}
	*dest.(*string) = bintext.EncodeBase64(data)
	return nil
}

func decodeBase64(src, dest interface{}, _ Options) error {
	text, err := asText(src)
	if err != nil {
		return err
	}
	data, err := bintext.DecodeBase64(text)
	if err != nil {
		return err
	}
	return setBytes(dest, data)
}

func encodeHex(src, dest interface{}, opts Options) error {
	data, err := asBytes(src)
	if err != nil {
		return err
	}
	*dest.(*string) = bintext.EncodeHex(data, opts.HexUpper)
	return nil
}

func decodeHex(src, dest interface{}, _ Options) error {
	text, err := asText(src)
	if err != nil {
		return err
	}
	data, err := bintext.DecodeHex(text)
	if err != nil {
		return err
	}
	return setBytes(dest, data)
}

func encodeAnsi(src, dest interface{}, opts Options) error {
	text, err := asText(src)
	if err != nil {
		return err
	}
	codepage, err := opts.LegacyCodepage()
	if err != nil {
		return err
	}
	encoded, err := codepage.Encode(text)
	if err != nil {
		return err
	}
	*dest.(*string) = encoded
	return nil
}

func decodeAnsi(src, dest interface{}, opts Options) error {
	raw, err := asBytes(src)
	if err != nil {
		return err
	}
	codepage, err := opts.LegacyCodepage()
	if err != nil {
		return err
	}
	text, err := codepage.Decode(raw)
	if err != nil {
		return err
	}
	return setText(dest, text)
}

func bytesToString(src, dest interface{}, opts Options) error {
	switch opts.BinaryText {
	case Base64:
		return encodeBase64(src, dest, opts)
	case Hex:
		return encodeHex(src, dest, opts)
	case Ansi:
		return decodeAnsi(src, dest, opts)
	}
	*dest.(*string) = string(src.([]byte))
	return nil
}

func stringToBytes(src, dest interface{}, opts Options) error {
	switch opts.BinaryText {
	case Base64:
		return decodeBase64(src, dest, opts)
	case Hex:
		return decodeHex(src, dest, opts)
	case Ansi:
		text := src.(string)
		codepage, err := opts.LegacyCodepage()
		if err != nil {
			return err
		}
		encoded, err := codepage.Encode(text)
		if err != nil {
			return err
		}
		*dest.(*[]byte) = []byte(encoded)
		return nil
	}
	*dest.(*[]byte) = []byte(src.(string))
	return nil
}

func wideToString(src, dest interface{}, _ Options) error {
	text, err := asText(src)
	if err != nil {
		return err
	}
	*dest.(*string) = text
	return nil
}

func stringToRunes(src, dest interface{}, _ Options) error {
	*dest.(*[]rune) = ansi.ToWide(src.(string))
	return nil
}

func stringToUTF16(src, dest interface{}, _ Options) error {
	*dest.(*[]uint16) = ansi.ToUTF16(src.(string))
	return nil
}

func registerBitset[T bitset.Unsigned]() {
	rType := reflect.TypeOf(T(0))
	register(realType(rType), realType(indexesType), func(src, dest interface{}, _ Options) error {
		*dest.(*[]uint) = bitset.Indexes(src.(T))
		return nil
	})
	register(realType(indexesType), realType(rType), func(src, dest interface{}, _ Options) error {
		*dest.(*T) = bitset.FromIndexes[T](src.([]uint))
		return nil
	})
}

func timeToMillis(src, dest interface{}, _ Options) error {
	*dest.(*int64) = ftime.ToMillis(src.(time.Time))
	return nil
}

func timeToUnsignedMillis(src, dest interface{}, _ Options) error {
	ts := src.(time.Time)
	ms := ftime.ToMillis(ts)
	if ms < 0 {
		return fmt.Errorf("timestamp %v precedes epoch", ts)
	}
	*dest.(*uint64) = uint64(ms)
	return nil
}

func millisToTime(src, dest interface{}, _ Options) error {
	*dest.(*time.Time) = ftime.FromMillis(src.(int64))
	return nil
}

func unsignedMillisToTime(src, dest interface{}, _ Options) error {
	ms := src.(uint64)
	if ms > math.MaxInt64 {
		return fmt.Errorf("milliseconds %v out of range", ms)
	}
	*dest.(*time.Time) = ftime.FromMillis(int64(ms))
	return nil
}

func timeToString(src, dest interface{}, opts Options) error {
	*dest.(*string) = ftime.FormatLayout(opts.TimeLayout, src.(time.Time))
	return nil
}

func stringToTime(src, dest interface{}, opts Options) error {
	ts, err := ftime.Parse(opts.TimeLayout, src.(string))
	if err != nil {
		return err
	}
	*dest.(*time.Time) = ts
	return nil
}

func durationToString(src, dest interface{}, _ Options) error {
	*dest.(*string) = src.(time.Duration).String()
	return nil
}

func stringToDuration(src, dest interface{}, _ Options) error {
	duration, err := time.ParseDuration(src.(string))
	if err != nil {
		return err
	}
	*dest.(*time.Duration) = duration
	return nil
}
