package loader

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// EnvPrefix is the prefix of every environment variable chip reads.
const EnvPrefix = "CHIP_"

// EnvLoader loads configuration from environment variables.
//
// Mapped variables go to their configured path. Any other variable with
// the prefix is converted by name: CHIP_EDITOR_TAB_SIZE becomes
// editor.tabSize.
type EnvLoader struct {
	prefix  string
	mapping map[string]string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		environ: os.Environ,
	}
}

// NewEnvLoaderFrom creates a loader that reads variables from environ
// instead of the process environment.
func NewEnvLoaderFrom(prefix string, environ func() []string) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.environ = environ
	return l
}

func defaultEnvMapping() map[string]string {
	return map[string]string{
		"CHIP_TAB_SIZE":        "editor.tabSize",
		"CHIP_WELCOME":         "editor.welcome",
		"CHIP_MESSAGE_TIMEOUT": "ui.messageTimeout",
		"CHIP_HELP_MESSAGE":    "ui.helpMessage",
		"CHIP_LOG_LEVEL":       "logging.level",
		"CHIP_LOG_FILE":        "logging.file",
	}
}

// Load returns the prefixed variables as a nested map.
// An empty value is a value, not an unset variable.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if name == ConfigFileEnv {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, l.parseValue(value))
	}
	return config, nil
}

// ConfigFileEnv names the variable that overrides the config file path.
// It selects a source rather than carrying a setting, so Load skips it.
const ConfigFileEnv = "CHIP_CONFIG"

// envToPath converts CHIP_EDITOR_TAB_SIZE to editor.tabSize.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) == 0 || parts[0] == "" {
		return ""
	}

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	var setting strings.Builder
	setting.WriteString(strings.ToLower(parts[1]))
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		setting.WriteString(strings.ToUpper(part[:1]))
		setting.WriteString(strings.ToLower(part[1:]))
	}
	return section + "." + setting.String()
}

// parseValue converts a variable's text to the most specific type it
// parses as: bool, int64, float64, time.Duration, a JSON array or
// object, or finally the string itself. Only "true" and "false" are
// bools, so words like "on" or "no" stay usable as message text.
func (l *EnvLoader) parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	if (strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")) && gjson.Valid(s) {
		return gjson.Parse(s).Value()
	}

	return s
}

// setByPath sets value in data at a dot-separated path, creating
// intermediate maps as needed.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
