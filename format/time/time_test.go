package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		layout      string
		input       string
		expect      time.Time
		expectErr   bool
	}{
		{
			description: "iso with utc suffix",
			input:       "2014-11-12T06:34:20Z",
			expect:      time.Date(2014, 11, 12, 6, 34, 20, 0, time.UTC),
		},
		{
			description: "iso with fraction",
			input:       "2014-10-15T17:41:52.724658",
			expect:      time.Date(2014, 10, 15, 17, 41, 52, 724658000, time.UTC),
		},
		{
			description: "space separated",
			input:       "2023-01-02 01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "T separator under space layout",
			layout:      DateFormatToTimeLayout("YYYY-MM-DD hh:mm:ss"),
			input:       "2023-01-02T01:22:19",
			expect:      time.Date(2023, 1, 2, 1, 22, 19, 0, time.UTC),
		},
		{
			description: "date format layout",
			layout:      DateFormatToTimeLayout("YYYY-MM-DD"),
			input:       "2023-01-02",
			expect:      time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "offset is not supported",
			input:       "2014-11-12T06:34:20+02:00",
			expectErr:   true,
		},
		{
			description: "garbage",
			input:       "not a time",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		ts, err := Parse(testCase.layout, testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.True(t, testCase.expect.Equal(ts), testCase.description)
	}
}

func TestFormat(t *testing.T) {
	var testCases = []struct {
		description string
		input       time.Time
		expect      string
	}{
		{description: "whole seconds", input: time.Date(2014, 11, 12, 6, 34, 20, 0, time.UTC), expect: "2014-11-12T06:34:20"},
		{description: "microseconds", input: time.Date(2014, 10, 15, 17, 41, 52, 724658000, time.UTC), expect: "2014-10-15T17:41:52.724658"},
		{description: "half second keeps width", input: time.Date(2014, 10, 15, 17, 41, 52, 500000000, time.UTC), expect: "2014-10-15T17:41:52.500000"},
		{description: "nanoseconds", input: time.Date(2014, 10, 15, 17, 41, 52, 1, time.UTC), expect: "2014-10-15T17:41:52.000000001"},
		{description: "converted to utc", input: time.Date(2014, 11, 12, 8, 34, 20, 0, time.FixedZone("EET", 2*3600)), expect: "2014-11-12T06:34:20"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FormatLayout("", testCase.input), testCase.description)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	now := time.Now()
	ts, err := Parse("", FormatLayout("", now))
	require.NoError(t, err)
	assert.True(t, now.Equal(ts))
}

func TestDateFormatToTimeLayout(t *testing.T) {
	assert.Equal(t, "2006-01-02", DateFormatToTimeLayout("YYYY-MM-DD"))
	assert.Equal(t, "2006-01-02 15:04:05.000", DateFormatToTimeLayout("YYYY-MM-DD hh:mm:ss.SSS"))
}

func TestMillis(t *testing.T) {
	ts := time.Date(2014, 11, 12, 6, 34, 20, 123456789, time.UTC)
	ms := ToMillis(ts)
	assert.Equal(t, int64(1415774060123), ms)
	assert.True(t, ts.Truncate(time.Millisecond).Equal(FromMillis(ms)))
	assert.True(t, Epoch.Equal(FromMillis(0)))
	assert.Equal(t, int64(-1000), ToMillis(Epoch.Add(-time.Second)))
}

func TestToMillis_Truncation(t *testing.T) {
	ancient := time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC).Unix() * 1000
	future := time.Date(2500, 1, 1, 0, 0, 0, 0, time.UTC).Unix() * 1000
	var testCases = []struct {
		description string
		input       time.Time
		expect      int64
	}{
		{description: "pre epoch sub millisecond", input: time.Date(1969, 12, 31, 23, 59, 59, 999500000, time.UTC), expect: 0},
		{description: "pre epoch fraction", input: time.Date(1969, 12, 31, 23, 59, 58, 1500000, time.UTC), expect: -1998},
		{description: "post epoch sub millisecond", input: time.Date(1970, 1, 1, 0, 0, 0, 999999, time.UTC), expect: 0},
		{description: "before duration range", input: time.Date(1500, 1, 1, 0, 0, 0, 500000, time.UTC), expect: ancient + 1},
		{description: "before duration range whole", input: time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC), expect: ancient},
		{description: "after duration range", input: time.Date(2500, 1, 1, 0, 0, 0, 1500000, time.UTC), expect: future + 1},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ToMillis(testCase.input), testCase.description)
	}
}
