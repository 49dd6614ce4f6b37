package config

import (
	"fyne.io/fyne/v2"
)

// Store is the durable key/value backend for settings that must survive
// restarts. Load reports false when the key has never been written.
type Store interface {
	Load(key string) (string, bool)
	Save(key, value string)
}

// PreferencesStore keeps values in the Fyne app preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore wraps the given preferences
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Load returns the stored string; Fyne returns "" for unknown keys, which is treated as absent
func (s *PreferencesStore) Load(key string) (string, bool) {
	value := s.prefs.String(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// Save writes the value
func (s *PreferencesStore) Save(key, value string) {
	s.prefs.SetString(key, value)
}

// MemoryStore is an in-process Store, handy in tests and previews.
type MemoryStore struct {
	values map[string]string
	saves  int
}

// NewMemoryStore creates a store pre-filled with initial (may be nil)
func NewMemoryStore(initial map[string]string) *MemoryStore {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MemoryStore{values: values}
}

// Load returns the value for key
func (s *MemoryStore) Load(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Save stores value under key
func (s *MemoryStore) Save(key, value string) {
	s.values[key] = value
	s.saves++
}

// Saves returns how many times Save was called
func (s *MemoryStore) Saves() int {
	return s.saves
}
