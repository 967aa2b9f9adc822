package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSettings wraps every schedule settings validation failure.
	ErrInvalidSettings = errors.New("invalid schedule settings")

	// ErrAlreadyScheduled is returned when a week already has scheduled
	// tasks and the request does not ask to replace them.
	ErrAlreadyScheduled = errors.New("week already scheduled")

	// ErrGeneratorUnavailable is returned by plan generation when no LLM
	// provider is configured.
	ErrGeneratorUnavailable = errors.New("plan generator unavailable")
)

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("plan validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
