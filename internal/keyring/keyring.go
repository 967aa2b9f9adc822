package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service       = "studyplan"
	anthropicUser = "anthropic-api-key"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the Anthropic API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(service, anthropicUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the Anthropic API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("api key cannot be empty")
	}
	if err := keyring.Set(service, anthropicUser, key); err != nil {
		return fmt.Errorf("storing api key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the Anthropic API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(service, anthropicUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting api key from keyring: %w", err)
	}
	return nil
}

// Store adapts the package functions to the CLI's key store interface.
type Store struct{}

func (Store) Set(key string) error { return SetAPIKey(key) }

func (Store) Delete() error { return DeleteAPIKey() }
