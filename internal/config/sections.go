package config

import (
	"errors"
	"time"
)

const (
	defaultTabSize        = 4
	defaultWelcome        = "Chip Editor -- version " + Version
	defaultMessageTimeout = 5 * time.Second
	defaultHelpMessage    = "HELP: Ctrl-Q = quit"
	defaultLogLevel       = "info"
)

// Section accessors return snapshot structs. Mutating the returned
// struct does not modify the configuration.

// EditorConfig holds text display settings.
type EditorConfig struct {
	// TabSize is the distance between tab stops. Always at least 1.
	TabSize int

	// Welcome is the banner shown when no file is loaded.
	Welcome string
}

// UIConfig holds status and message bar settings.
type UIConfig struct {
	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration

	// HelpMessage is the status message shown at startup.
	HelpMessage string
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level string

	// File is the log destination. Empty disables logging.
	File string
}

// Editor returns the editor settings.
func (c *Config) Editor() EditorConfig {
	tabSize := c.getIntOr("editor.tabSize", defaultTabSize)
	if tabSize < 1 {
		c.recordConfigError("editor.tabSize", &ValidationError{
			Path:    "editor.tabSize",
			Message: "must be at least 1",
			Value:   tabSize,
		})
		tabSize = defaultTabSize
	}
	return EditorConfig{
		TabSize: tabSize,
		Welcome: c.getStringOr("editor.welcome", defaultWelcome),
	}
}

// UI returns the status and message bar settings.
func (c *Config) UI() UIConfig {
	timeout := c.getDurationOr("ui.messageTimeout", defaultMessageTimeout)
	if timeout <= 0 {
		c.recordConfigError("ui.messageTimeout", &ValidationError{
			Path:    "ui.messageTimeout",
			Message: "must be positive",
			Value:   timeout,
		})
		timeout = defaultMessageTimeout
	}
	return UIConfig{
		MessageTimeout: timeout,
		HelpMessage:    c.getStringOr("ui.helpMessage", defaultHelpMessage),
	}
}

// Logging returns the logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", defaultLogLevel),
		File:  c.getStringOr("logging.file", ""),
	}
}

// Keys returns user key bindings from the keys section, key to action.
// Entries whose action is not a string are skipped and recorded.
func (c *Config) Keys() map[string]string {
	v, ok := c.Get("keys")
	if !ok {
		return nil
	}
	section, ok := v.(map[string]any)
	if !ok {
		c.recordConfigError("keys", &TypeError{Path: "keys", Expected: "table", Actual: typeName(v)})
		return nil
	}
	keys := make(map[string]string, len(section))
	for k, a := range section {
		action, ok := a.(string)
		if !ok {
			path := "keys." + k
			c.recordConfigError(path, &TypeError{Path: path, Expected: "string", Actual: typeName(a)})
			continue
		}
		keys[k] = action
	}
	return keys
}

// These fall back to the default when the setting is missing or invalid.
// Type errors are recorded in ConfigErrors.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getDurationOr(path string, defaultValue time.Duration) time.Duration {
	v, err := c.GetDuration(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

// recordConfigError keeps the first error seen for each path.
func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	if _, exists := c.configErrors[path]; !exists {
		c.configErrors[path] = err
	}
}

// ConfigErrors returns the problems found by section accessors, keyed by
// setting path.
func (c *Config) ConfigErrors() map[string]error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.configErrors == nil {
		return nil
	}
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
