package config

import "sync"

// Configuration is the process-wide settings handle. It owns the single
// resolved document and guards it with a readers-writer lock: many
// concurrent readers take snapshots, privileged reload paths replace the
// whole document under the exclusive lock. Nothing outside this package
// mutates the guarded value.
type Configuration struct {
	mu       sync.RWMutex
	settings Settings
}

// NewDefault constructs a handle populated with the compiled-in defaults,
// without running a resolution pass. This is the explicit built-in
// fallback, a valid alternate initial value.
func NewDefault() *Configuration {
	return &Configuration{settings: DefaultSettings()}
}

// Load runs a full resolution pass over the input and, only on success,
// constructs a handle holding the resolved document.
func Load(info *Info) (*Configuration, error) {
	settings, err := LoadSettings(info)
	if err != nil {
		return nil, err
	}
	return &Configuration{settings: settings}, nil
}

// Settings returns a snapshot of the full document. The shared lock is
// held only for the duration of the copy, and the clone never aliases the
// guarded value.
func (c *Configuration) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Clone()
}

// SiteName returns the configured public site name.
func (c *Configuration) SiteName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Website.Name
}

// APIBaseURL returns the externally visible API base URL, if one is
// configured.
func (c *Configuration) APIBaseURL() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.settings.Net.BaseURL == "" {
		return "", false
	}
	return c.settings.Net.BaseURL, true
}

// Replace overwrites the guarded document under the exclusive lock. It is
// meant for privileged reload paths and test harnesses, not for request
// handling.
func (c *Configuration) Replace(settings Settings) {
	clone := settings.Clone()
	c.mu.Lock()
	c.settings = clone
	c.mu.Unlock()
}

// Reload resolves the input and replaces the guarded document only if the
// whole pass succeeds. On failure the previous document stays untouched
// and the error is returned for reporting.
func (c *Configuration) Reload(info *Info) error {
	settings, err := LoadSettings(info)
	if err != nil {
		return err
	}
	c.Replace(settings)
	return nil
}
