package format

import (
	"time"

	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/typecast/format/time"
)

// FormatTime formats timestamp with the tag layout, or the ISO extended layout
func (t *Tag) FormatTime(ts time.Time) string {
	return ftime.FormatLayout(t.TimeLayout, ts)
}

// ParseTime parses timestamp with the tag layout, or the ISO extended layout
func (t *Tag) ParseTime(value string) (time.Time, error) {
	return ftime.Parse(t.TimeLayout, value)
}

// Key returns map key for a field: tag name if defined, field name in caseFormat otherwise
func (t *Tag) Key(fieldName string, caseFormat text.CaseFormat) string {
	if t.Name != "" {
		return t.Name
	}
	if !caseFormat.IsDefined() {
		return fieldName
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}
