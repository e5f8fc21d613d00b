package storage

import (
	"encoding/json"
	"fmt"

	"fyne.io/fyne/v2"
)

// Store is the persistent string-keyed JSON store the services depend on.
type Store interface {
	// Set serializes value to JSON and stores it under key.
	Set(key string, value any) error

	// Get deserializes the value under key into out. It returns false with
	// a nil error when the key is absent.
	Get(key string, out any) (bool, error)

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// PrefStore persists values through fyne.Preferences.
type PrefStore struct {
	prefs fyne.Preferences
}

// NewPrefStore creates a store over the given preferences, typically
// app.Preferences() of the running Fyne app.
func NewPrefStore(prefs fyne.Preferences) *PrefStore {
	return &PrefStore{prefs: prefs}
}

// Set implements Store.
func (s *PrefStore) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	s.prefs.SetString(key, string(data))
	return nil
}

// Get implements Store.
func (s *PrefStore) Get(key string, out any) (bool, error) {
	raw := s.prefs.String(key)
	if raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("deserialize %s: %w", key, err)
	}
	return true, nil
}

// Remove implements Store.
func (s *PrefStore) Remove(key string) error {
	s.prefs.RemoveValue(key)
	return nil
}
