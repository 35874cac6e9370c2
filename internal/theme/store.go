// Package theme persists and serves the light/dark preference.
package theme

import (
	"os"
	"path/filepath"
	"sync"

	"calcd/internal/errors"

	"gopkg.in/yaml.v3"
)

// PreferenceKey names the stored dark-mode flag in every backend.
const PreferenceKey = "dark_theme"

// Store persists the dark-mode preference. Read reports ok=false when no
// value has ever been written.
type Store interface {
	Read() (dark bool, ok bool, err error)
	Write(dark bool) error
}

// MemoryStore keeps the preference in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	dark *bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read() (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dark == nil {
		return false, false, nil
	}
	return *s.dark, true, nil
}

func (s *MemoryStore) Write(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = &dark
	return nil
}

// FileStore keeps the preference in a small YAML document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileDocument struct {
	DarkTheme *bool `yaml:"dark_theme"`
}

// NewFileStore creates a store backed by path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Read() (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, errors.NewPreferenceError("read theme file", PreferenceKey, errors.PreferenceReadFailed, err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false, false, errors.NewPreferenceError("parse theme file", PreferenceKey, errors.PreferenceReadFailed, err)
	}
	if doc.DarkTheme == nil {
		return false, false, nil
	}
	return *doc.DarkTheme, true, nil
}

// Write replaces the file through a rename so readers never see a partial document.
func (s *FileStore) Write(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.NewPreferenceError("create theme directory", PreferenceKey, errors.PreferenceWriteFailed, err)
	}

	data, err := yaml.Marshal(fileDocument{DarkTheme: &dark})
	if err != nil {
		return errors.NewPreferenceError("encode theme file", PreferenceKey, errors.PreferenceWriteFailed, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.NewPreferenceError("write theme file", PreferenceKey, errors.PreferenceWriteFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.NewPreferenceError("replace theme file", PreferenceKey, errors.PreferenceWriteFailed, err)
	}
	return nil
}

// Preferences is the subset of fyne.Preferences the preferences store needs.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// PreferencesStore keeps the preference in the GUI toolkit's per-app
// preferences. The flag is stored as a string so an unset key is
// distinguishable from false.
type PreferencesStore struct {
	prefs Preferences
}

// NewPreferencesStore wraps prefs, typically fyne.App.Preferences().
func NewPreferencesStore(prefs Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

func (s *PreferencesStore) Read() (bool, bool, error) {
	switch v := s.prefs.String(PreferenceKey); v {
	case "":
		return false, false, nil
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	default:
		return false, false, errors.NewPreferenceError("unexpected stored value "+v, PreferenceKey, errors.PreferenceReadFailed, nil)
	}
}

func (s *PreferencesStore) Write(dark bool) error {
	value := "false"
	if dark {
		value = "true"
	}
	s.prefs.SetString(PreferenceKey, value)
	return nil
}
