package time

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ISOExtendedLayout is the default timestamp layout, fraction of seconds is appended when present
const ISOExtendedLayout = "2006-01-02T15:04:05"

const (
	microFraction = ".000000"
	nanoFraction  = ".000000000"
	utcSuffix     = "Z"
)

// Epoch is the reference instant for millisecond timestamps
var Epoch = time.Unix(0, 0).UTC()

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSSSSS", ".000000",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"-hh", "Z07",
	"Z", "Z07:00",
)

// DateFormatToTimeLayout converts ISO 2022-07-15 date format (YYYY-MM-DD hh:mm:ss) to time layout
func DateFormatToTimeLayout(dateFormat string) string {
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// FormatLayout formats timestamp in UTC with supplied layout, empty layout uses ISO extended one,
// its fraction of seconds is written with 6 digits, or 9 when timestamp carries sub-microsecond detail
func FormatLayout(layout string, ts time.Time) string {
	ts = ts.UTC()
	if layout != "" {
		return ts.Format(layout)
	}
	layout = ISOExtendedLayout
	if nanos := ts.Nanosecond(); nanos != 0 {
		if nanos%int(time.Microsecond) == 0 {
			layout += microFraction
		} else {
			layout += nanoFraction
		}
	}
	return ts.Format(layout)
}

// Parse parses value with layout in UTC, empty layout uses ISO extended one.
// Trailing UTC designator 'Z' is stripped, fraction of seconds is optional,
// 'T' and space are interchangeable as date time separator.
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = ISOExtendedLayout
	}
	if !strings.HasSuffix(layout, utcSuffix) && !strings.Contains(layout, "Z07") {
		value = strings.TrimSuffix(value, utcSuffix)
	}
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	ts, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return ts, nil
}

// ToMillis returns number of milliseconds elapsed since Epoch, sub-millisecond part is truncated toward zero
func ToMillis(ts time.Time) int64 {
	if elapsed := ts.Sub(Epoch); elapsed > math.MinInt64 && elapsed < math.MaxInt64 {
		return elapsed.Milliseconds()
	}
	//beyond duration range
	sec, nsec := ts.Unix(), int64(ts.Nanosecond())
	if sec < 0 && nsec > 0 {
		sec++
		nsec -= int64(time.Second)
	}
	return sec*1000 + nsec/int64(time.Millisecond)
}

// FromMillis returns UTC timestamp that is ms milliseconds after Epoch
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
