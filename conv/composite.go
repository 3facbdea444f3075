package conv

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unsafe"

	"github.com/viant/typecast/format"
	"github.com/viant/xunsafe"
)

func (c *Converter) convertComposite(src, dest reflect.Value) error {
	destType := dest.Type().Elem()
	switch destType.Kind() {
	case reflect.Slice:
		if src.Kind() == reflect.Slice || src.Kind() == reflect.Array {
			return c.convertToSlice(src, dest)
		}
	case reflect.Map:
		switch src.Kind() {
		case reflect.Map:
			return c.convertMapToMap(src, dest)
		case reflect.Struct:
			return c.convertStructToMap(src, dest)
		}
	case reflect.Struct:
		switch src.Kind() {
		case reflect.Map:
			return c.convertMapToStruct(src, dest)
		case reflect.Struct:
			return c.convertStructToStruct(src, dest)
		}
	}
	return ErrUnsupported
}

func (c *Converter) convertToSlice(src, dest reflect.Value) error {
	destType := dest.Type().Elem()
	if src.Kind() == reflect.Slice && src.IsNil() {
		dest.Elem().Set(reflect.Zero(destType))
		return nil
	}
	length := src.Len()
	slice := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		if err := c.convertValue(src.Index(i), slice.Index(i).Addr()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	dest.Elem().Set(slice)
	return nil
}

func (c *Converter) convertMapToMap(src, dest reflect.Value) error {
	destType := dest.Type().Elem()
	if src.IsNil() {
		dest.Elem().Set(reflect.Zero(destType))
		return nil
	}
	result := reflect.MakeMapWithSize(destType, src.Len())
	iter := src.MapRange()
	for iter.Next() {
		key := reflect.New(destType.Key())
		if err := c.convertValue(iter.Key(), key); err != nil {
			return fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}
		value := reflect.New(destType.Elem())
		if err := c.convertValue(iter.Value(), value); err != nil {
			return fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}
		result.SetMapIndex(key.Elem(), value.Elem())
	}
	dest.Elem().Set(result)
	return nil
}

func (c *Converter) convertStructToMap(src, dest reflect.Value) error {
	destType := dest.Type().Elem()
	info, err := c.structInfo(src.Type())
	if err != nil {
		return err
	}
	structPtr := structPointer(src)
	result := reflect.MakeMapWithSize(destType, len(info.fields))
	for _, field := range info.fields {
		value := field.addr(structPtr).Elem()
		if field.tag.Omitempty && value.IsZero() {
			continue
		}
		if value, err = c.exportField(field, value); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
		key := reflect.New(destType.Key())
		if err = c.convertValue(reflect.ValueOf(field.label), key); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
		item := reflect.New(destType.Elem())
		if err = c.convertValue(value, item); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
		result.SetMapIndex(key.Elem(), item.Elem())
	}
	dest.Elem().Set(result)
	return nil
}

// exportField applies field encoding and time layout before the value leaves the struct
func (c *Converter) exportField(field *structField, value reflect.Value) (reflect.Value, error) {
	if field.tag.IsZero() {
		return value, nil
	}
	if field.encoding != None {
		text, err := c.encodeValue(field.encoding, value)
		if err != nil {
			return value, err
		}
		return reflect.ValueOf(text), nil
	}
	if field.tag.TimeLayout != "" {
		if ts := indirect(value); ts.IsValid() && ts.Type() == timeType {
			return reflect.ValueOf(field.tag.FormatTime(ts.Interface().(time.Time))), nil
		}
	}
	return value, nil
}

func (c *Converter) convertMapToStruct(src, dest reflect.Value) error {
	info, err := c.structInfo(dest.Type().Elem())
	if err != nil {
		return err
	}
	values := make(map[string]reflect.Value, src.Len())
	iter := src.MapRange()
	for iter.Next() {
		values[c.matchKey(mapKey(iter.Key()))] = iter.Value()
	}
	structPtr := dest.UnsafePointer()
	for _, field := range info.fields {
		value, ok := values[field.key]
		if !ok && field.alias != "" {
			value, ok = values[field.alias]
		}
		if !ok {
			continue
		}
		if err = c.importField(field, value, field.addr(structPtr)); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
	}
	return nil
}

// importField applies field encoding and time layout to a value entering the struct
func (c *Converter) importField(field *structField, value, dest reflect.Value) error {
	if field.tag.IsZero() {
		return c.convertValue(value, dest)
	}
	if field.encoding != None {
		return c.decodeValue(field.encoding, value, dest)
	}
	if field.tag.TimeLayout != "" {
		text := indirect(value)
		if text.IsValid() && text.Kind() == reflect.String && indirectType(field.rType) == timeType {
			ts, err := field.tag.ParseTime(text.String())
			if err != nil {
				return err
			}
			return c.convertValue(reflect.ValueOf(ts), dest)
		}
	}
	return c.convertValue(value, dest)
}

func (c *Converter) convertStructToStruct(src, dest reflect.Value) error {
	srcInfo, err := c.structInfo(src.Type())
	if err != nil {
		return err
	}
	destInfo, err := c.structInfo(dest.Type().Elem())
	if err != nil {
		return err
	}
	srcPtr, destPtr := structPointer(src), dest.UnsafePointer()
	for _, field := range destInfo.fields {
		srcField := srcInfo.lookup(field)
		if srcField == nil {
			continue
		}
		if err = c.convertValue(srcField.addr(srcPtr).Elem(), field.addr(destPtr)); err != nil {
			return fmt.Errorf("field %s: %w", field.name, err)
		}
	}
	return nil
}

func (c *Converter) matchKey(key string) string {
	if c.options.CaseSensitive {
		return key
	}
	return strings.ToLower(key)
}

func mapKey(key reflect.Value) string {
	key = indirect(key)
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprintf("%v", key.Interface())
}

// structPointer returns pointer to the struct value, non addressable values are copied
func structPointer(v reflect.Value) unsafe.Pointer {
	if v.CanAddr() {
		return v.Addr().UnsafePointer()
	}
	copied := reflect.New(v.Type())
	copied.Elem().Set(v)
	return copied.UnsafePointer()
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// struct metadata caching

type structField struct {
	name     string
	label    string
	key      string
	alias    string
	depth    int
	tag      *format.Tag
	encoding Tag
	rType    reflect.Type
	path     []*xunsafe.Field
}

func (f *structField) addr(structPtr unsafe.Pointer) reflect.Value {
	ptr := structPtr
	for _, field := range f.path {
		ptr = field.Pointer(ptr)
	}
	return reflect.NewAt(f.rType, ptr)
}

type structInfo struct {
	fields []*structField
	byKey  map[string]*structField
}

func (s *structInfo) lookup(field *structField) *structField {
	if match, ok := s.byKey[field.key]; ok {
		return match
	}
	if field.alias != "" {
		return s.byKey[field.alias]
	}
	return nil
}

func (s *structInfo) add(field *structField) {
	if prev, ok := s.byKey[field.key]; ok && prev.key == field.key {
		if prev.depth <= field.depth {
			return
		}
		for i, candidate := range s.fields {
			if candidate == prev {
				s.fields = append(s.fields[:i], s.fields[i+1:]...)
				break
			}
		}
	}
	s.fields = append(s.fields, field)
	s.byKey[field.key] = field
	if field.alias != "" {
		if _, ok := s.byKey[field.alias]; !ok {
			s.byKey[field.alias] = field
		}
	}
}

func (c *Converter) structInfo(t reflect.Type) (*structInfo, error) {
	if v, ok := c.structCache.Load(t); ok {
		return v.(*structInfo), nil
	}
	info := &structInfo{byKey: make(map[string]*structField)}
	if err := c.buildStructInfo(t, info, nil); err != nil {
		return nil, err
	}
	v, _ := c.structCache.LoadOrStore(t, info)
	return v.(*structInfo), nil
}

func (c *Converter) buildStructInfo(t reflect.Type, info *structInfo, parent []*xunsafe.Field) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag, err := format.Parse(field.Tag, format.TagName, c.options.TagName)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if tag.Ignore {
			continue
		}
		path := make([]*xunsafe.Field, len(parent)+1)
		copy(path, parent)
		path[len(parent)] = xunsafe.NewField(field)

		if field.Anonymous && field.Type.Kind() == reflect.Struct && tag.Name == "" {
			if err = c.buildStructInfo(field.Type, info, path); err != nil {
				return err
			}
			continue
		}
		if !field.IsExported() && !c.options.AccessUnexported {
			continue
		}
		encoding, err := ParseTag(tag.Encoding)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		label := tag.Key(field.Name, c.options.CaseFormat)
		sField := &structField{
			name:     field.Name,
			label:    label,
			key:      c.matchKey(label),
			depth:    len(parent),
			tag:      tag,
			encoding: encoding,
			rType:    field.Type,
			path:     path,
		}
		if alias := c.matchKey(field.Name); alias != sField.key {
			sField.alias = alias
		}
		info.add(sField)
	}
	return nil
}
