package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf_SundayFirstCodes(t *testing.T) {
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Saturday, WeekdayOf(time.Saturday))
	assert.Equal(t, time.Friday, Friday.Time())
}

func TestParseWeekday_Names(t *testing.T) {
	cases := []struct {
		in   string
		want Weekday
	}{
		{"mon", Monday},
		{"Monday", Monday},
		{" WED ", Wednesday},
		{"周五", Friday},
		{"星期日", Sunday},
		{"1", Sunday},
		{"7", Saturday},
	}
	for _, tc := range cases {
		got, err := ParseWeekday(tc.in)
		require.NoError(t, err, "ParseWeekday(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseWeekday(%q)", tc.in)
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, in := range []string{"", "0", "8", "funday"} {
		_, err := ParseWeekday(in)
		assert.Error(t, err, "ParseWeekday(%q)", in)
	}
}

func TestParseWeekdayList_DedupesAndSorts(t *testing.T) {
	days, err := ParseWeekdayList("fri,mon,wed,Mon")
	require.NoError(t, err)
	assert.Equal(t, []Weekday{Monday, Wednesday, Friday}, days)
	assert.Equal(t, "Mon,Wed,Fri", FormatWeekdays(days))

	days, err = ParseWeekdayList("  ")
	require.NoError(t, err)
	assert.Empty(t, days)

	_, err = ParseWeekdayList("mon,xyz")
	assert.Error(t, err)
}

func TestWeekday_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
	assert.Equal(t, "Sun", Sunday.String())
}
