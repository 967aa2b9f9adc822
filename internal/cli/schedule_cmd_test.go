package cli

import (
	"testing"

	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_OneWeek(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	out, err := executeCmd(t, app, "schedule", "--plan", planID[:8], "--week", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK 1 SCHEDULE")
	assert.Contains(t, out, "placed 2h 30m of 2h 30m")
	assert.Contains(t, out, "Vocabulary (1/2)")
	assert.Contains(t, out, "Grammar drills (2/2)")
	assert.Contains(t, out, "Mon Mar 10")
	assert.NotContains(t, out, "could not be scheduled")
}

func TestSchedule_SecondRunNeedsReplace(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	_, err := executeCmd(t, app, "schedule", "--plan", planID, "--week", "1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "schedule", "--plan", planID, "--week", "1")
	require.ErrorIs(t, err, service.ErrAlreadyScheduled)
	assert.Contains(t, err.Error(), "--replace")

	_, err = executeCmd(t, app, "schedule", "--plan", planID, "--week", "1", "--replace")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "list", "--plan", planID, "--week", "1")
	require.NoError(t, err)
	assert.Equal(t, 4, countLines(out, "pending"))
}

func TestSchedule_WholePlan(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	out, err := executeCmd(t, app, "schedule", "--plan", planID)
	require.NoError(t, err)
	assert.Contains(t, out, "WEEK 1 SCHEDULE")
	assert.Contains(t, out, "WEEK 2 SCHEDULE")
	assert.Contains(t, out, "Mock exam")
}

func TestSchedule_WeekOverrides(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	out, err := executeCmd(t, app, "schedule", "--plan", planID, "--week", "1",
		"--days", "wed,fri", "--from", "07:00", "--to", "08:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Wed Mar 12")
	assert.Contains(t, out, "07:00-07:30")
	assert.NotContains(t, out, "Mon Mar 10")

	// Saved settings are untouched.
	out, err = executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Mon,Tue,Wed,Thu,Fri")
}

func TestSchedule_OverridesNeedWeek(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	_, err := executeCmd(t, app, "schedule", "--plan", planID, "--days", "mon")
	assert.ErrorContains(t, err, "need --week")
}

func TestSchedule_ReportsUnscheduledWork(t *testing.T) {
	app := testApp(t, nil)
	planID := importPlan(t, app)

	out, err := executeCmd(t, app, "schedule", "--plan", planID, "--week", "1",
		"--days", "mon", "--from", "18:00", "--to", "18:45")
	require.NoError(t, err)
	assert.Contains(t, out, "could not be scheduled")
	assert.Contains(t, out, "CAPACITY_EXCEEDED")
}

func TestSchedule_BadWeekdayFlag(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "schedule", "--plan", "x", "--week", "1", "--days", "funday")
	assert.ErrorContains(t, err, `invalid weekday "funday"`)
}
