package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their file names ("weeks[0].tasks[1].title").
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidatePlanSchema checks the plan file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error
	errs = append(errs, structErrors(schema)...)
	errs = append(errs, validateWeeks(schema.Weeks)...)
	return errs
}

// ValidateWeeks checks generator output, which carries weeks without a plan
// header.
func ValidateWeeks(weeks []WeekImport) []error {
	var errs []error
	if len(weeks) == 0 {
		return []error{fmt.Errorf("weeks: at least one week is required")}
	}
	for i := range weeks {
		for _, err := range structErrors(&weeks[i]) {
			errs = append(errs, fmt.Errorf("weeks[%d].%w", i, err))
		}
	}
	errs = append(errs, validateWeeks(weeks)...)
	return errs
}

func structErrors(s any) []error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) error {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "datetime":
		return fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, fe.Value())
	case "min":
		return fmt.Errorf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Errorf("%s: failed %q check", field, fe.Tag())
	}
}

// validateWeeks runs the checks struct tags cannot express.
func validateWeeks(weeks []WeekImport) []error {
	var errs []error

	seenWeeks := make(map[int]bool)
	taskRefs := make(map[string]bool)
	for _, w := range weeks {
		for _, t := range w.Tasks {
			if t.ID != "" {
				taskRefs[t.ID] = true
			}
		}
	}

	for i, w := range weeks {
		prefix := fmt.Sprintf("weeks[%d]", i)
		if w.WeekNumber > 0 {
			if seenWeeks[w.WeekNumber] {
				errs = append(errs, fmt.Errorf("%s.week_number: duplicate week %d", prefix, w.WeekNumber))
			}
			seenWeeks[w.WeekNumber] = true
		}

		taskIDs := make(map[string]bool)
		for j, t := range w.Tasks {
			tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)

			if t.ID != "" {
				if taskIDs[t.ID] {
					errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", tp, t.ID))
				}
				taskIDs[t.ID] = true
			}
			if t.EstimatedDuration != nil && *t.EstimatedDuration < 0 {
				errs = append(errs, fmt.Errorf("%s.estimated_duration must not be negative", tp))
			}
			if t.Difficulty != "" {
				if _, err := domain.ParseDifficulty(t.Difficulty); err != nil {
					errs = append(errs, fmt.Errorf("%s.difficulty: %w", tp, err))
				}
			}
			for _, wd := range t.PreferredWeekdays {
				if _, err := domain.ParseWeekday(wd); err != nil {
					errs = append(errs, fmt.Errorf("%s.preferred_weekdays: %w", tp, err))
				}
			}
			for _, dep := range t.Dependencies {
				if !taskRefs[dep] {
					errs = append(errs, fmt.Errorf("%s.dependencies: ref %q not found in tasks", tp, dep))
				} else if dep == t.ID {
					errs = append(errs, fmt.Errorf("%s.dependencies: self-dependency %q", tp, dep))
				}
			}
		}
	}

	return errs
}
