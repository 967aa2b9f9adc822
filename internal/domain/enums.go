package domain

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank returns the sort position of a difficulty (lower = easier).
// Unknown values sort with medium.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyHard:
		return 2
	default:
		return 1
	}
}

// ParseDifficulty accepts the canonical names plus a few common synonyms
// emitted by plan generators ("简单", "beginner", ...).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "simple", "beginner", "简单", "容易":
		return DifficultyEasy, nil
	case "medium", "normal", "moderate", "intermediate", "中等", "一般":
		return DifficultyMedium, nil
	case "hard", "difficult", "advanced", "困难", "难":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

type ScheduledTaskStatus string

const (
	ScheduledPending ScheduledTaskStatus = "pending"
	ScheduledDone    ScheduledTaskStatus = "done"
	ScheduledSkipped ScheduledTaskStatus = "skipped"
)

type PlanSource string

const (
	PlanGenerated PlanSource = "generated"
	PlanImported  PlanSource = "imported"
)
