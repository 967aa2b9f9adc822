package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlanSchema is the top-level structure of a plan file.
type PlanSchema struct {
	Plan  PlanHeader   `json:"plan" yaml:"plan"`
	Weeks []WeekImport `json:"weeks" yaml:"weeks" validate:"required,min=1,dive"`
}

// PlanHeader defines the plan-level fields in the import file.
type PlanHeader struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	StartDate   string `json:"start_date" yaml:"start_date" validate:"required,datetime=2006-01-02"`
}

// WeekImport defines one week of the plan.
type WeekImport struct {
	WeekNumber     int          `json:"week_number" yaml:"week_number" validate:"required,min=1"`
	Milestones     []string     `json:"milestones,omitempty" yaml:"milestones,omitempty"`
	TaskCount      int          `json:"task_count,omitempty" yaml:"task_count,omitempty" validate:"min=0"`
	EstimatedHours float64      `json:"estimated_hours,omitempty" yaml:"estimated_hours,omitempty" validate:"min=0"`
	Tasks          []TaskImport `json:"tasks" yaml:"tasks" validate:"dive"`
}

// TaskImport defines a task within a week. EstimatedDuration is in seconds;
// Duration is the free-text label used when no positive seconds value is
// given.
type TaskImport struct {
	ID                 string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title              string   `json:"title" yaml:"title" validate:"required"`
	Description        string   `json:"description,omitempty" yaml:"description,omitempty"`
	Quantity           string   `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Duration           string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	EstimatedDuration  *float64 `json:"estimated_duration,omitempty" yaml:"estimated_duration,omitempty"`
	Difficulty         string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	PreferredWeekdays  []string `json:"preferred_weekdays,omitempty" yaml:"preferred_weekdays,omitempty"`
	PreferredTimeSlots []string `json:"preferred_time_slots,omitempty" yaml:"preferred_time_slots,omitempty"`
	Dependencies       []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// LoadPlanSchema reads a plan file. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON.
func LoadPlanSchema(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}

func ParseYAML(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}

// DecodeWeeks parses a bare JSON array of weeks, as produced by the plan
// generator.
func DecodeWeeks(raw []byte) ([]WeekImport, error) {
	var weeks []WeekImport
	if err := json.Unmarshal(raw, &weeks); err != nil {
		return nil, fmt.Errorf("parsing weeks: %w", err)
	}
	return weeks, nil
}
