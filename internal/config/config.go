package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dshills/chip/internal/config/loader"
)

// Version is the chip release shown in the welcome banner.
const Version = "0.1"

// Config holds the merged settings.
type Config struct {
	mu sync.RWMutex

	merged map[string]any

	// file is the config file to read; empty means the default path.
	file    string
	fs      loader.FileSystem
	environ func() []string

	// configErrors records type and range problems found by accessors.
	configErrors map[string]error
}

// Option configures a Config.
type Option func(*Config)

// WithConfigFile reads settings from path instead of the default location.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnviron replaces the process environment, in os.Environ form.
func WithEnviron(environ func() []string) Option {
	return func(c *Config) {
		c.environ = environ
	}
}

// New creates a Config holding only the built-in defaults.
func New(opts ...Option) *Config {
	c := &Config{
		merged:  defaultConfig(),
		fs:      loader.OSFS{},
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load layers the config file and then the environment over the defaults.
// It returns a *loader.ParseError for a malformed config file.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file == "" {
		c.file = DefaultPath(c.lookupEnv)
	}

	// Later sources override earlier ones.
	sources := []loader.Loader{
		loader.NewTOMLLoader(c.fs, c.file),
		loader.NewEnvLoaderFrom(loader.EnvPrefix, c.environ),
	}
	merged := defaultConfig()
	for _, src := range sources {
		data, err := src.Load()
		if err != nil {
			return err
		}
		merged = loader.DeepMerge(merged, data)
	}
	c.merged = merged
	c.configErrors = nil
	return nil
}

// File returns the config file path used by the last Load.
func (c *Config) File() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.file
}

func (c *Config) lookupEnv(key string) string {
	prefix := key + "="
	for _, env := range c.environ() {
		if strings.HasPrefix(env, prefix) {
			return env[len(prefix):]
		}
	}
	return ""
}

// DefaultPath returns the config file location given an environment
// lookup function such as os.Getenv.
func DefaultPath(getenv func(string) string) string {
	if path := getenv(loader.ConfigFileEnv); path != "" {
		return path
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chip", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "chip", "config.toml")
	}
	return ""
}

// Get returns the value at a dot-separated path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != math.Trunc(val) {
			return 0, &TypeError{Path: path, Expected: "int", Actual: "float64"}
		}
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration ("5s"); bare integers are seconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case int64:
		return time.Duration(val) * time.Second, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("string %q", val)}
		}
		return d, nil
	default:
		return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
}

// defaultConfig returns the built-in settings.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"tabSize": defaultTabSize,
			"welcome": defaultWelcome,
		},
		"ui": map[string]any{
			"messageTimeout": defaultMessageTimeout,
			"helpMessage":    defaultHelpMessage,
		},
		"logging": map[string]any{
			"level": defaultLogLevel,
			"file":  "",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := any(m)
	for _, part := range strings.Split(path, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = cm[part]; !ok {
			return nil, false
		}
	}
	return current, true
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
