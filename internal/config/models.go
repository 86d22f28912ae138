package config

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/muurk/eduportal/internal/catalog"
)

// CurrentVersion is the only preferences file layout this build understands.
const CurrentVersion = 1

// Views a session may open on. Paths outside this list have no view.
var StartViews = []string{"/", "/tutorials", "/week-one"}

// TutorialViews are the layouts of the Tutorials card list.
var TutorialViews = []string{"grid", "list"}

// Config represents the entire user preferences file.
type Config struct {
	Version     int         `yaml:"version" mapstructure:"version"`
	CatalogPath string      `yaml:"catalog_path,omitempty" mapstructure:"catalog_path"` // Empty means the embedded catalog
	Preferences Preferences `yaml:"preferences" mapstructure:"preferences"`
	Log         LogConfig   `yaml:"log" mapstructure:"log"`
}

// Preferences represents how the portal looks when it starts.
type Preferences struct {
	DefaultView       string `yaml:"default_view" mapstructure:"default_view"`               // Route opened on launch
	DarkMode          bool   `yaml:"dark_mode" mapstructure:"dark_mode"`                     // Start with the dark theme
	TutorialView      string `yaml:"tutorial_view" mapstructure:"tutorial_view"`             // "grid" or "list"
	TutorialSort      string `yaml:"tutorial_sort" mapstructure:"tutorial_sort"`             // popular, newest or rating
	RecentSearchLimit int    `yaml:"recent_search_limit" mapstructure:"recent_search_limit"` // Recent searches kept in the search bar
}

// LogConfig controls the zap log file. An empty level keeps logging silent.
type LogConfig struct {
	Level string `yaml:"level,omitempty" mapstructure:"level"`
	File  string `yaml:"file,omitempty" mapstructure:"file"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version: CurrentVersion,
		Preferences: Preferences{
			DefaultView:       "/",
			TutorialView:      "grid",
			TutorialSort:      catalog.SortPopular,
			RecentSearchLimit: 5,
		},
	}
}

// Validate reports the first value the portal cannot start with.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	p := c.Preferences
	if !slices.Contains(StartViews, p.DefaultView) {
		return fmt.Errorf("preferences.default_view %q is not one of %v", p.DefaultView, StartViews)
	}
	if !slices.Contains(TutorialViews, p.TutorialView) {
		return fmt.Errorf("preferences.tutorial_view %q is not one of %v", p.TutorialView, TutorialViews)
	}
	if !slices.Contains(catalog.SortOrders, p.TutorialSort) {
		return fmt.Errorf("preferences.tutorial_sort %q is not one of %v", p.TutorialSort, catalog.SortOrders)
	}
	if p.RecentSearchLimit < 1 {
		return fmt.Errorf("preferences.recent_search_limit must be at least 1, got %d", p.RecentSearchLimit)
	}
	return nil
}

// LogFile returns where the TUI writes its log, defaulting to eduportal.log
// in the config directory.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "eduportal.log"), nil
}
