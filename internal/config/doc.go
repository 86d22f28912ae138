// Package config provides user preference management for EduPortal.
//
// Preferences live in a YAML file that follows OS-specific conventions for
// storage location. Nothing the learner does in the portal is written back;
// the file only changes through `eduportal config init` or by hand.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/eduportal/config.yaml or $HOME/.config/eduportal/config.yaml
//   - macOS: $HOME/.config/eduportal/config.yaml
//   - Windows: %LOCALAPPDATA%\eduportal\config.yaml
//
// EDUPORTAL_CONFIG overrides the location entirely.
//
// # Precedence
//
// Values are resolved by viper, lowest to highest:
//
//  1. Built-in defaults (see New)
//  2. The YAML file
//  3. EDUPORTAL_* environment variables, with dots replaced by underscores
//     (EDUPORTAL_PREFERENCES_TUTORIAL_SORT=rating)
//  4. Command line flags, applied by cmd/eduportal
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if cfg.Preferences.DarkMode {
//	    // start dark
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for safe initialization across goroutines.
// File writes are protected by a mutex and are atomic (temp file + rename).
package config
