package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
	ftime "github.com/viant/typecast/format/time"
)

const (
	// TagName is the default struct tag name carrying field conversion hints
	TagName = "format"
)

const (
	comaTerminatorToken = iota
	scopeBlockToken
)

var (
	comaTerminatorMatcher = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
	scopeBlockMatcher     = parsly.NewToken(scopeBlockToken, "{ .... }", matcher.NewBlock('{', '}', '\\'))
)

// Tag represents field conversion hints, i.e. `format:"name=payload,encoding=base64"`
type Tag struct {
	//Name overrides the map key matched with a field
	Name string
	//Encoding routes field value through a virtual encoding: base64, hex or ansi
	Encoding string

	DateFormat string
	TimeLayout string

	Omitempty bool
	Ignore    bool
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "encoding", "enc":
		t.Encoding = strings.ToLower(value)
	case "dateformat", "isodateformat", "iso20220715":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return fmt.Errorf("unknown %v key: %v", TagName, key)
		}
	}
	return nil
}

// IsZero returns true if tag carries no hints
func (t *Tag) IsZero() bool {
	return *t == Tag{}
}

// Parse parses struct tag, the first name (TagName by default) is parsed in strict mode,
// additional names are used as fallback, i.e. json name
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}
	if len(names) == 0 || names[0] == "" {
		names = append([]string{TagName}, names...)
	}
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		switch encoded {
		case "-":
			ret.Ignore = true
			continue
		case ",omitempty":
			ret.Omitempty = true
			continue
		}
		strict := i == 0
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for cursor.Pos < len(cursor.Input) {
			key, value := matchPair(cursor)
			if key == "" && !strict {
				if ret.Name == "" && value != "" { //fallback json style name
					ret.Name = value
				} else if value == "omitempty" {
					ret.Omitempty = true
				}
				continue
			}
			if key == "" {
				key, value = value, ""
			}
			if key == "" {
				break
			}
			if err := ret.update(key, value, strict); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(scopeBlockMatcher, comaTerminatorMatcher)
	switch match.Code {
	case scopeBlockToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(comaTerminatorMatcher)
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
