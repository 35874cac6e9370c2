package theme

import (
	"fmt"

	"calcd/internal/config"
)

// NewStore builds the store selected by cfg. prefs is required only for the
// preferences backend and may be nil otherwise.
func NewStore(cfg config.ThemeConfig, prefs Preferences) (Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return NewFileStore(cfg.File), nil
	case config.StorePreferences:
		if prefs == nil {
			return nil, fmt.Errorf("theme store %q needs application preferences", cfg.Store)
		}
		return NewPreferencesStore(prefs), nil
	case config.StoreMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown theme store %q", cfg.Store)
}
