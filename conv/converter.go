package conv

import (
	"fmt"
	"reflect"
	"sync"
)

// ConversionFunc defines a conversion function, dest is a pointer to the destination value
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

// endpoint is either a real type or a virtual tag
type endpoint struct {
	rType reflect.Type
	tag   Tag
}

type typeKey struct {
	src  endpoint
	dest endpoint
}

// Converter provides type conversion functionality, it is safe for concurrent use
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
	structCache   sync.Map // map[reflect.Type]*structInfo
}

// NewConverter creates a new type converter with the provided options
func NewConverter(options Options) (*Converter, error) {
	if err := options.init(); err != nil {
		return nil, err
	}
	return &Converter{options: options}, nil
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// RegisterConversion registers a conversion function between source and destination types,
// registered functions take precedence over built-in ones
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{src: endpoint{rType: srcType}, dest: endpoint{rType: destType}}, fn)
}

// RegisterEncoding registers a function producing tag encoded text (*string dest) from srcType
func (c *Converter) RegisterEncoding(tag Tag, srcType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{src: endpoint{rType: srcType}, dest: endpoint{tag: tag}}, fn)
}

// RegisterDecoding registers a function converting tag encoded text to destType
func (c *Converter) RegisterDecoding(tag Tag, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{src: endpoint{tag: tag}, dest: endpoint{rType: destType}}, fn)
}

// Convert converts the source value to the value pointed by dest.
// A nil source leaves the destination untouched.
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	destValue, err := destinationValue(dest)
	if err != nil {
		return err
	}
	return c.convertValue(reflect.ValueOf(src), destValue)
}

// ConvertFrom converts the source value, interpreted as tag encoded text, to the value pointed by dest
func (c *Converter) ConvertFrom(tag Tag, src interface{}, dest interface{}) error {
	if tag == None {
		return c.Convert(src, dest)
	}
	destValue, err := destinationValue(dest)
	if err != nil {
		return err
	}
	return c.decodeValue(tag, reflect.ValueOf(src), destValue)
}

// Encode converts the source value to tag encoded text
func (c *Converter) Encode(tag Tag, src interface{}) (string, error) {
	if tag == None {
		var result string
		err := c.Convert(src, &result)
		return result, err
	}
	return c.encodeValue(tag, reflect.ValueOf(src))
}

func destinationValue(dest interface{}) (reflect.Value, error) {
	if dest == nil {
		return reflect.Value{}, ErrInvalidDestination
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrInvalidDestination, dest)
	}
	return destValue, nil
}

func (c *Converter) convertValue(src, dest reflect.Value) error {
	if src = indirect(src); !src.IsValid() {
		return nil
	}
	dest = allocate(dest)
	err := c.dispatch(src, dest)
	return newError(typeName(src.Type()), typeName(dest.Type().Elem()), None, err)
}

func (c *Converter) decodeValue(tag Tag, src, dest reflect.Value) error {
	if src = indirect(src); !src.IsValid() {
		return nil
	}
	dest = allocate(dest)
	destType := dest.Type().Elem()
	fn, _, destAs, ok := c.lookup(endpoint{tag: tag}, endpoint{rType: destType})
	if !ok {
		return &Error{Source: typeName(src.Type()), Target: typeName(destType), Tag: tag, Cause: ErrUnsupported}
	}
	err := c.apply(fn, src, sourceType(src.Type()), dest, destAs)
	return newError(typeName(src.Type()), typeName(destType), tag, err)
}

func (c *Converter) encodeValue(tag Tag, src reflect.Value) (string, error) {
	var result string
	if src = indirect(src); !src.IsValid() {
		return result, nil
	}
	fn, srcAs, _, ok := c.lookup(endpoint{rType: src.Type()}, endpoint{tag: tag})
	if !ok {
		return "", &Error{Source: typeName(src.Type()), Target: tag.String(), Tag: tag, Cause: ErrUnsupported}
	}
	if err := c.apply(fn, src, srcAs, reflect.ValueOf(&result), nil); err != nil {
		return "", newError(typeName(src.Type()), tag.String(), tag, err)
	}
	return result, nil
}

// dispatch resolves strategy from the most specific to the most generic one
func (c *Converter) dispatch(src, dest reflect.Value) error {
	srcType, destType := src.Type(), dest.Type().Elem()
	if fn, srcAs, destAs, ok := c.lookup(endpoint{rType: srcType}, endpoint{rType: destType}); ok {
		return c.apply(fn, src, srcAs, dest, destAs)
	}
	if srcType.AssignableTo(destType) {
		dest.Elem().Set(src)
		return nil
	}
	if isEnum(srcType) || isEnum(destType) {
		return c.convertEnum(src, dest)
	}
	if handled, err := c.convertScalar(src, dest); handled {
		return err
	}
	return c.convertComposite(src, dest)
}

// lookup finds registered strategy for exact types first, then for their unnamed underlying types
func (c *Converter) lookup(src, dest endpoint) (ConversionFunc, reflect.Type, reflect.Type, bool) {
	if fn, ok := c.find(typeKey{src: src, dest: dest}); ok {
		return fn, src.rType, dest.rType, true
	}
	underlyingSrc, underlyingDest := src, dest
	if src.rType != nil {
		underlyingSrc.rType = sourceType(src.rType)
	}
	if dest.rType != nil {
		underlyingDest.rType = destinationType(dest.rType)
	}
	if underlyingSrc == src && underlyingDest == dest {
		return nil, nil, nil, false
	}
	if fn, ok := c.find(typeKey{src: underlyingSrc, dest: underlyingDest}); ok {
		return fn, underlyingSrc.rType, underlyingDest.rType, true
	}
	return nil, nil, nil, false
}

func (c *Converter) find(key typeKey) (ConversionFunc, bool) {
	if v, ok := c.customConvMap.Load(key); ok {
		return v.(ConversionFunc), true
	}
	fn, ok := builtins[key]
	return fn, ok
}

// apply calls fn with source and destination adjusted to the types fn was registered with
func (c *Converter) apply(fn ConversionFunc, src reflect.Value, srcAs reflect.Type, dest reflect.Value, destAs reflect.Type) error {
	if srcAs != nil && src.Type() != srcAs {
		src = src.Convert(srcAs)
	}
	target := dest
	adjusted := destAs != nil && dest.Type().Elem() != destAs
	if adjusted {
		target = reflect.New(destAs)
	}
	if err := fn(src.Interface(), target.Interface(), c.options); err != nil {
		return err
	}
	if adjusted {
		dest.Elem().Set(target.Elem().Convert(dest.Type().Elem()))
	}
	return nil
}

// helper functions

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// allocate follows pointer destinations, allocating nil ones
func allocate(dest reflect.Value) reflect.Value {
	for dest.Elem().Kind() == reflect.Ptr {
		if dest.Elem().IsNil() {
			dest.Elem().Set(reflect.New(dest.Type().Elem().Elem()))
		}
		dest = dest.Elem()
	}
	return dest
}
