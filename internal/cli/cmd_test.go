package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/intelligence"
	"github.com/alexanderramin/studyplan/internal/keyring"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// planMonday is the Monday test plans start on.
var planMonday = testutil.PlanMonday

// stubGenerator returns canned weeks for plan generate.
type stubGenerator struct {
	weeks []domain.WeekPlan
}

func (g *stubGenerator) Generate(_ context.Context, req intelligence.PlanRequest) ([]domain.WeekPlan, error) {
	return g.weeks, nil
}

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. generator may be nil, as when no LLM provider is configured.
func testApp(t *testing.T, generator service.PlanGenerator) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	goalRepo := repository.NewSQLiteGoalRepo(db)
	planRepo := repository.NewSQLitePlanRepo(db)
	taskRepo := repository.NewSQLiteScheduledTaskRepo(db)
	settingsRepo := repository.NewSQLiteSettingsRepo(db)

	// Keep dates independent of the machine's zone.
	require.NoError(t, settingsRepo.Upsert(context.Background(), &domain.ScheduleSettings{
		SelectedWeekdays: domain.DefaultScheduleSettings().SelectedWeekdays,
		Timezone:         "UTC",
	}))

	return &App{
		Goals:    service.NewGoalService(goalRepo),
		Plans:    service.NewPlanService(goalRepo, planRepo, settingsRepo, uow, generator),
		Schedule: service.NewScheduleService(uow, nil),
		Tasks:    service.NewTaskService(taskRepo, planRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo),
		APIKeys:  keyring.Store{},
		Now:      func() time.Time { return planMonday.Add(12 * time.Hour) },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

const twoWeekPlanFile = `{
  "plan": {"title": "HSK 4 prep", "start_date": "2025-03-12"},
  "weeks": [
    {
      "week_number": 1,
      "milestones": ["Unit 1 vocabulary"],
      "tasks": [
        {"id": "vocab", "title": "Vocabulary", "duration": "1小时", "difficulty": "easy"},
        {"title": "Grammar drills", "estimated_duration": 5400, "difficulty": "hard"}
      ]
    },
    {
      "week_number": 2,
      "tasks": [
        {"title": "Mock exam", "duration": "45 min", "difficulty": "medium", "dependencies": ["vocab"]}
      ]
    }
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writePlanFile writes the two-week plan file and returns its path.
func writePlanFile(t *testing.T) string {
	return writeFile(t, "plan.json", twoWeekPlanFile)
}

// importPlan imports the two-week plan and returns its id.
func importPlan(t *testing.T, app *App) string {
	t.Helper()
	_, err := executeCmd(t, app, "plan", "import", writePlanFile(t))
	require.NoError(t, err)
	plans, err := app.Plans.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	return plans[0].ID
}

// countLines counts output lines containing sub.
func countLines(out, sub string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, sub) {
			n++
		}
	}
	return n
}
