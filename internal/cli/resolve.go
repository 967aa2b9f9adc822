package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveGoalID accepts a full goal id or a unique prefix of one.
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}
	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return matchID("goal", input, ids)
}

// resolvePlanID accepts a full plan id or a unique prefix of one.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}
	plans, err := app.Plans.List(ctx, "")
	if err != nil {
		return "", err
	}
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return matchID("plan", input, ids)
}

// matchID prefers an exact id and otherwise requires a unique prefix match.
func matchID(kind, input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

// parseDate reads a YYYY-MM-DD flag value as UTC midnight; services place
// the written date in the configured time zone.
func parseDate(flag, s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", flag, s)
	}
	return t, nil
}
