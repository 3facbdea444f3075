package conv

import (
	"encoding"
	"reflect"
	"time"
)

var (
	bytesType    = reflect.TypeOf([]byte{})
	runesType    = reflect.TypeOf([]rune{})
	utf16Type    = reflect.TypeOf([]uint16{})
	indexesType  = reflect.TypeOf([]uint{})
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	int64Type    = reflect.TypeOf(int64(0))
	uint64Type   = reflect.TypeOf(uint64(0))

	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(0),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   int64Type,
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  uint64Type,
	reflect.Uintptr: reflect.TypeOf(uintptr(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  stringType,
}

// basicType returns predeclared type of the t kind, or t itself
func basicType(t reflect.Type) reflect.Type {
	if basic, ok := basicTypes[t.Kind()]; ok {
		return basic
	}
	return t
}

// underlying returns unnamed type identical to t underlying type for scalars and slices
func underlying(t reflect.Type) reflect.Type {
	if t.Name() == "" {
		return t
	}
	if t.Kind() == reflect.Slice {
		return reflect.SliceOf(t.Elem())
	}
	return basicType(t)
}

// sourceType returns type used to look up a source strategy, types with own text form are kept as is
func sourceType(t reflect.Type) reflect.Type {
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return t
	}
	return underlying(t)
}

// destinationType returns type used to look up a destination strategy
func destinationType(t reflect.Type) reflect.Type {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return t
	}
	return underlying(t)
}

// isEnum returns true for named integer types declared outside the predeclared set
func isEnum(t reflect.Type) bool {
	if t.Name() == "" || t.PkgPath() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isScalarKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
