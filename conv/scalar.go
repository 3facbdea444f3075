package conv

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// convertEnum converts named integer types through their integer value, String() is never consulted
func (c *Converter) convertEnum(src, dest reflect.Value) error {
	srcType, destType := src.Type(), dest.Type().Elem()
	if isEnum(srcType) {
		src = src.Convert(basicType(srcType))
	}
	if !isEnum(destType) {
		return c.dispatch(src, dest)
	}
	value := reflect.New(basicType(destType))
	if err := c.dispatch(src, value); err != nil {
		return err
	}
	dest.Elem().Set(value.Elem().Convert(destType))
	return nil
}

// convertScalar converts scalars through their text form, it returns false if either side is not a scalar
func (c *Converter) convertScalar(src, dest reflect.Value) (bool, error) {
	destType := dest.Type().Elem()
	if !isText(src) || !(isScalarKind(destType.Kind()) || reflect.PointerTo(destType).Implements(textUnmarshalerType)) {
		return false, nil
	}
	text, err := formatScalar(src)
	if err != nil {
		return true, err
	}
	return true, parseScalar(text, dest)
}

func isText(v reflect.Value) bool {
	return isScalarKind(v.Kind()) || v.Type().Implements(textMarshalerType) || reflect.PointerTo(v.Type()).Implements(textMarshalerType)
}

func formatScalar(v reflect.Value) (string, error) {
	if marshaler, ok := textMarshaler(v); ok {
		data, err := marshaler.MarshalText()
		return string(data), err
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return cast.ToStringE(v.Convert(basicType(v.Type())).Interface())
}

func textMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if v.Type().Implements(textMarshalerType) {
		return v.Interface().(encoding.TextMarshaler), true
	}
	if !reflect.PointerTo(v.Type()).Implements(textMarshalerType) {
		return nil, false
	}
	if !v.CanAddr() {
		copied := reflect.New(v.Type())
		copied.Elem().Set(v)
		return copied.Interface().(encoding.TextMarshaler), true
	}
	return v.Addr().Interface().(encoding.TextMarshaler), true
}

// parseScalar parses text into the value pointed by dest
func parseScalar(text string, dest reflect.Value) error {
	if unmarshaler, ok := dest.Interface().(encoding.TextUnmarshaler); ok {
		return unmarshaler.UnmarshalText([]byte(text))
	}
	value := dest.Elem()
	switch value.Kind() {
	case reflect.String:
		value.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return err
		}
		value.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, value.Type().Bits())
		if err != nil {
			return err
		}
		value.SetFloat(f)
	default:
		return ErrUnsupported
	}
	return nil
}

// parseBool accepts true and false, then 1 and 0
func parseBool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	bit, err := strconv.ParseUint(text, 10, 1)
	if err != nil {
		return false, &strconv.NumError{Func: "ParseBool", Num: text, Err: strconv.ErrSyntax}
	}
	return bit == 1, nil
}
