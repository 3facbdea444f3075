package typecast

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/typecast/conv"
)

//Option converter option
type Option func(o *conv.Options)

//Options represents converter options
type Options []Option

//Apply applies options
func (o Options) Apply(options *conv.Options) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(options)
	}
}

//WithCodepage legacy single-byte codepage used by Ansi conversions, i.e. cp1251
func WithCodepage(name string) Option {
	return func(o *conv.Options) {
		o.Codepage = name
	}
}

//WithHexUpper emits upper-case hex digits
func WithHexUpper(upper bool) Option {
	return func(o *conv.Options) {
		o.HexUpper = upper
	}
}

//WithBinaryText encoding used between []byte and string
func WithBinaryText(tag Tag) Option {
	return func(o *conv.Options) {
		o.BinaryText = tag
	}
}

//WithDateFormat ISO style date format (YYYY-MM-DD hh:mm:ss) used for timestamp text
func WithDateFormat(dateFormat string) Option {
	return func(o *conv.Options) {
		o.DateFormat = dateFormat
		o.TimeLayout = ""
	}
}

//WithCaseFormat case format of map keys matched with struct fields
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *conv.Options) {
		o.CaseFormat = caseFormat
	}
}
