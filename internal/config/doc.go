// Package config loads chip's settings.
//
// Settings are layered, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. the TOML file named by $CHIP_CONFIG, or
//     $XDG_CONFIG_HOME/chip/config.toml (~/.config/chip/config.toml)
//  3. CHIP_* environment variables
//
// A missing config file is not an error. A malformed one is.
//
// Settings are read through typed section accessors:
//
//	cfg := config.New()
//	if err := cfg.Load(); err != nil {
//	    return err
//	}
//	tabs := cfg.Editor().TabSize
//
// Accessors never fail. A value of the wrong type or out of range falls
// back to its default and is recorded in ConfigErrors.
package config
