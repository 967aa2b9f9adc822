package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalAdd_ListAndRemove(t *testing.T) {
	app := testApp(t, nil)

	out, err := executeCmd(t, app, "goal", "add", "--title", "Pass HSK 4", "--subject", "chinese", "--target", "2025-06-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Created goal Pass HSK 4")

	goals, err := app.Goals.List(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.NotNil(t, goals[0].TargetDate)
	assert.Equal(t, "2025-06-30", goals[0].TargetDate.Format("2006-01-02"))

	out, err = executeCmd(t, app, "goal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pass HSK 4")
	assert.Contains(t, out, "Chinese")
	assert.Contains(t, out, goals[0].ID[:8])

	out, err = executeCmd(t, app, "goal", "rm", goals[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted goal Pass HSK 4")

	out, err = executeCmd(t, app, "goal", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals yet")
}

func TestGoalAdd_RequiresTitleWhenNotInteractive(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "goal", "add")
	assert.ErrorContains(t, err, "--title is required")
}

func TestGoalAdd_RejectsBadTargetDate(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "goal", "add", "--title", "X", "--target", "30/06/2025")
	assert.ErrorContains(t, err, "invalid target date")
}

func TestGoalRemove_UnknownID(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "goal", "rm", "nope")
	assert.ErrorContains(t, err, `goal not found: "nope"`)
}
