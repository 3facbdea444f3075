package conv

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/typecast/encoding/ansi"
	ftime "github.com/viant/typecast/format/time"
)

// Options contains configuration for the converter
type Options struct {
	// Codepage names the legacy single-byte codepage used by Ansi conversions
	Codepage string `yaml:"codepage"`
	// BinaryText is the encoding used between []byte and string when no tag is requested
	BinaryText Tag `yaml:"binaryText"`
	// HexUpper emits upper-case hex digits
	HexUpper bool `yaml:"hexUpper"`
	// DateFormat is an ISO style date format (YYYY-MM-DD hh:mm:ss) used for time.Time text
	DateFormat string `yaml:"dateFormat"`
	// TimeLayout is a time layout used for time.Time text, derived from DateFormat when empty
	TimeLayout string `yaml:"timeLayout"`
	// TagName is the struct tag name used as fallback for the field map key
	TagName string `yaml:"tagName"`
	// CaseFormat is the case format of map keys matched with struct fields
	CaseFormat text.CaseFormat `yaml:"caseFormat"`
	// CaseSensitive controls whether field/key matching is case sensitive
	CaseSensitive bool `yaml:"caseSensitive"`
	// AccessUnexported if true, allows converting unexported fields
	AccessUnexported bool `yaml:"accessUnexported"`

	codepage *ansi.Codepage
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Codepage:   ansi.DefaultCodepage,
		BinaryText: Base64,
		TagName:    "json",
	}
}

func (o *Options) init() error {
	if o.Codepage == "" {
		o.Codepage = ansi.DefaultCodepage
	}
	codepage, err := ansi.Lookup(o.Codepage)
	if err != nil {
		return err
	}
	o.codepage = codepage
	if o.TimeLayout == "" && o.DateFormat != "" {
		o.TimeLayout = ftime.DateFormatToTimeLayout(o.DateFormat)
	}
	return nil
}

// LegacyCodepage returns the configured legacy codepage
func (o Options) LegacyCodepage() (*ansi.Codepage, error) {
	if o.codepage != nil {
		return o.codepage, nil
	}
	return ansi.Lookup(o.Codepage)
}
