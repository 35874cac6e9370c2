package theme

import (
	"sync"

	"calcd/internal/log"
)

// Controller holds the current dark-mode preference, persisting changes
// through a Store and notifying listeners.
type Controller struct {
	store Store

	mu        sync.RWMutex
	dark      *bool // nil until a value is stored
	listeners []func(dark bool)
}

// NewController creates a controller over store. Call Load before use.
func NewController(store Store) *Controller {
	return &Controller{store: store}
}

// Load reads the stored preference once. A read failure leaves the
// preference unset so the host setting applies.
func (c *Controller) Load() error {
	dark, ok, err := c.store.Read()
	if err != nil {
		log.LogWithError(err).Warn("could not read theme preference")
		return err
	}

	c.mu.Lock()
	if ok {
		c.dark = &dark
	} else {
		c.dark = nil
	}
	c.mu.Unlock()
	return nil
}

// Preference returns the stored preference, or nil if none was stored.
func (c *Controller) Preference() *bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.dark == nil {
		return nil
	}
	v := *c.dark
	return &v
}

// IsDark reports the stored preference, defaulting to light.
func (c *Controller) IsDark() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dark != nil && *c.dark
}

// Resolve returns the stored preference, or systemDark when nothing is stored.
func (c *Controller) Resolve(systemDark bool) bool {
	if p := c.Preference(); p != nil {
		return *p
	}
	return systemDark
}

// OnChange registers fn to run whenever the effective preference changes.
func (c *Controller) OnChange(fn func(dark bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetDark updates the preference immediately and then persists it. The
// in-memory value is kept even if persisting fails.
func (c *Controller) SetDark(dark bool) error {
	c.set(dark)
	if err := c.store.Write(dark); err != nil {
		log.LogWithError(err).Error("could not save theme preference")
		return err
	}
	log.LogWithFields(log.F("dark", dark)).Debug("theme preference saved")
	return nil
}

// Toggle flips between light and dark. An unset preference counts as light.
func (c *Controller) Toggle() error {
	return c.SetDark(!c.IsDark())
}

// Reload re-reads the store, notifying listeners if another writer changed it.
func (c *Controller) Reload() error {
	dark, ok, err := c.store.Read()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	c.mu.RLock()
	unchanged := c.dark != nil && *c.dark == dark
	c.mu.RUnlock()
	if unchanged {
		return nil
	}

	log.LogWithFields(log.F("dark", dark)).Info("theme preference changed on disk")
	c.set(dark)
	return nil
}

func (c *Controller) set(dark bool) {
	c.mu.Lock()
	c.dark = &dark
	listeners := append([]func(bool){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(dark)
	}
}
