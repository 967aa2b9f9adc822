package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStandardizeMinutes_NearestIncrement(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 15},
		{1, 15},
		{22, 15},
		{23, 30},
		{37, 30},
		{38, 45},
		{45, 45},
		{52, 45},
		{53, 60},
		{80, 75}, // equidistant from 75 and 90: smaller wins
		{83, 90},
		{90, 90},
		{240, 90},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StandardizeMinutes(tc.in), "StandardizeMinutes(%d)", tc.in)
	}
}

func TestSplitMinutes_RemainderGoesToFirstDays(t *testing.T) {
	assert.Equal(t, []int{34, 33, 33}, SplitMinutes(100, 3))
	assert.Equal(t, []int{45, 45}, SplitMinutes(90, 2))
	assert.Equal(t, []int{1, 1, 0, 0, 0}, SplitMinutes(2, 5))
	assert.Nil(t, SplitMinutes(60, 0))
}

func TestOptimalDayCount_Table(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{15 * time.Minute, 1},
		{30 * time.Minute, 1},
		{31 * time.Minute, 2},
		{time.Hour, 2},
		{90 * time.Minute, 2},
		{2 * time.Hour, 2},
		{150 * time.Minute, 3},
		{3 * time.Hour, 3},
		{4 * time.Hour, 4},
		{4*time.Hour + time.Minute, 5},
		{12 * time.Hour, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OptimalDayCount(tc.d), "OptimalDayCount(%s)", tc.d)
	}
}

func TestFormatDurationLabel(t *testing.T) {
	assert.Equal(t, "45 min", FormatDurationLabel(45))
	assert.Equal(t, "1 h", FormatDurationLabel(60))
	assert.Equal(t, "1 h 15 min", FormatDurationLabel(75))
}

func TestClassify_DurationFirst(t *testing.T) {
	daily := domain.Task{EstimatedDuration: 1500 * time.Second, Description: "每日练习"}
	assert.Equal(t, DistributionDaily, Classify(daily))
	assert.Equal(t, DistributionDaily, Classify(daily), "classification must be deterministic")

	shortOneOff := domain.Task{EstimatedDuration: 20 * time.Minute, Description: "review chapter 3"}
	assert.Equal(t, DistributionWeekly, Classify(shortOneOff))

	englishDaily := domain.Task{EstimatedDuration: 10 * time.Minute, Description: "Practice vocabulary EVERY DAY"}
	assert.Equal(t, DistributionDaily, Classify(englishDaily))

	medium := domain.Task{EstimatedDuration: 5400 * time.Second, Description: "每日练习"}
	assert.Equal(t, DistributionWeekly, Classify(medium), "daily marker only matters for short tasks")

	long := domain.Task{EstimatedDuration: 10800 * time.Second}
	assert.Equal(t, DistributionIntensive, Classify(long))
}
