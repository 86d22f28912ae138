package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/eduportal/internal/catalog"
	"github.com/muurk/eduportal/internal/config"
	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/portal/tui"
	"github.com/muurk/eduportal/internal/search"
	"github.com/muurk/eduportal/internal/ui"
)

// Persistent flags
var (
	catalogPath string
	logLevel    string
	startView   string
	darkMode    bool
)

// Settings resolved by loadSettings before any command runs
var (
	settings *config.Config
	content  *catalog.Catalog
)

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog YAML file (default: built-in catalog)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&startView, "view", "", "Page to open on (/, /tutorials, /week-one)")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Start in dark mode")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings layers flags over the preferences file, starts logging and
// loads the catalog.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("view") {
		if !slices.Contains(config.StartViews, startView) {
			return fmt.Errorf("unknown view %q (expected one of %s)", startView, strings.Join(config.StartViews, ", "))
		}
		cfg.Preferences.DefaultView = startView
	}
	if flags.Changed("dark") {
		cfg.Preferences.DarkMode = darkMode
	}

	// The portal owns the terminal, so its log always goes to a file
	logFile := cfg.Log.File
	if cmd == rootCmd {
		if logFile, err = cfg.LogFile(); err != nil {
			return err
		}
	}
	if err := logging.Initialize(cfg.Log.Level, logFile); err != nil {
		return err
	}

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	logging.Debug("Settings loaded",
		zap.String("command", cmd.Name()),
		zap.String("catalog", cfg.CatalogPath),
		zap.String("view", cfg.Preferences.DefaultView),
		zap.Bool("dark", cfg.Preferences.DarkMode),
	)

	settings = cfg
	content = c
	return nil
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout())
}

func runPortal(cmd *cobra.Command, args []string) error {
	width, height := ui.GetTerminalSize()
	p := settings.Preferences

	model := tui.NewAppModel(tui.Options{
		Catalog:           content,
		StartPath:         p.DefaultView,
		DarkMode:          p.DarkMode,
		TutorialView:      p.TutorialView,
		TutorialSort:      p.TutorialSort,
		RecentSearchLimit: p.RecentSearchLimit,
		Width:             width,
		Height:            height,
	})

	logging.Info("Portal started", zap.String("view", p.DefaultView))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("portal failed: %w", err)
	}
	logging.Info("Portal closed")
	return nil
}

// Catalog sections
const (
	sectionCourses   = "courses"
	sectionTutorials = "tutorials"
	sectionWeek      = "week"
)

// catalog command flags
var (
	catalogFormat   string
	catalogCategory string
	catalogSort     string
)

// catalogCmd lists catalog content without the interactive portal
var catalogCmd = &cobra.Command{
	Use:       "catalog [courses|tutorials|week]",
	Short:     "List catalog content",
	ValidArgs: []string{sectionCourses, sectionTutorials, sectionWeek},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `List the courses, tutorials or week content of the catalog.

Without a section every section is printed. The built-in catalog is used
unless --catalog points at a YAML file.`,
	Example: `  # Everything
  eduportal catalog

  # Tutorials about React, highest rated first
  eduportal catalog tutorials --category react --sort rating

  # One line per course
  eduportal catalog courses --format compact

  # Week content as JSON
  eduportal catalog week --format json`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "detailed", "Output format (detailed, compact, json)")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", catalog.AllCategories, "Tutorial category filter")
	catalogCmd.Flags().StringVar(&catalogSort, "sort", catalog.SortPopular, "Tutorial order (popular, newest, rating)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(catalogFormat)
	if err != nil {
		return err
	}
	if !slices.Contains(catalog.SortOrders, catalogSort) {
		return fmt.Errorf("unknown sort %q (expected one of %s)", catalogSort, strings.Join(catalog.SortOrders, ", "))
	}

	sections := []string{sectionCourses, sectionTutorials, sectionWeek}
	if len(args) == 1 {
		sections = args
	}

	tutorials := content.FilterTutorials(catalogCategory)
	catalog.SortTutorials(tutorials, catalogSort)

	p := newPrinter(cmd)
	if format == ui.FormatJSON {
		out := make(map[string]any, len(sections))
		for _, s := range sections {
			switch s {
			case sectionCourses:
				out[s] = content.Courses
			case sectionTutorials:
				out[s] = tutorials
			case sectionWeek:
				out[s] = content.Week
			}
		}
		return p.PrintJSON(out)
	}

	for i, s := range sections {
		if i > 0 {
			p.Newline()
		}
		switch s {
		case sectionCourses:
			p.PrintHeader("COURSES", "eduportal catalog courses",
				ui.Param{Key: "Count", Value: fmt.Sprintf("%d", len(content.Courses))})
			for _, c := range content.Courses {
				p.Println(ui.RenderCourse(c, format))
				if format == ui.FormatDetailed {
					p.Newline()
				}
			}
		case sectionTutorials:
			p.PrintHeader("TUTORIALS", "eduportal catalog tutorials",
				ui.Param{Key: "Category", Value: catalogCategory},
				ui.Param{Key: "Sort", Value: catalog.SortLabel(catalogSort)},
				ui.Param{Key: "Count", Value: fmt.Sprintf("%d", len(tutorials))})
			for _, t := range tutorials {
				p.Println(ui.RenderTutorial(t, format))
				if format == ui.FormatDetailed {
					p.Newline()
				}
			}
		case sectionWeek:
			p.PrintHeader("WEEK", "eduportal catalog week")
			p.Println(ui.RenderWeek(content.Week, p.Width()))
		}
	}
	return nil
}

// search command flags
var (
	searchCategory   string
	searchDifficulty string
	searchDuration   string
	searchRating     string
	searchFormat     string
)

// searchCmd runs the portal search from the command line
var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search courses, tutorials and instructors",
	Long: `Search the catalog the same way the portal search bar does.

Titles rank above instructor names, which rank above descriptions. An empty
term lists everything in the category that passes the filters. When nothing
matches, the closest title or instructor name is suggested.`,
	Example: `  # Fuzzy search everywhere
  eduportal search hooks

  # Beginner tutorials under two hours
  eduportal search --category tutorials --difficulty beginner --duration 0-2

  # Filters accept labels too
  eduportal search python --rating "4+ Stars" --format json`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", search.CategoryAll, "Category (all, courses, tutorials, instructors)")
	searchCmd.Flags().StringVar(&searchDifficulty, "difficulty", "all", "Difficulty (all, beginner, intermediate, advanced)")
	searchCmd.Flags().StringVar(&searchDuration, "duration", "any", "Duration (any, 0-2, 2-5, 5+)")
	searchCmd.Flags().StringVar(&searchRating, "rating", "any", "Minimum rating (any, 4, 3, 2)")
	searchCmd.Flags().StringVar(&searchFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

// parseFilters resolves the filter flags against the select options
func parseFilters(difficulty, duration, rating string) (search.Filters, error) {
	var f search.Filters
	var err error
	if f.Difficulty, err = search.ParseOption(search.FieldDifficulty, difficulty); err != nil {
		return f, err
	}
	if f.Duration, err = search.ParseOption(search.FieldDuration, duration); err != nil {
		return f, err
	}
	if f.Rating, err = search.ParseOption(search.FieldRating, rating); err != nil {
		return f, err
	}
	return f, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(searchFormat)
	if err != nil {
		return err
	}
	filters, err := parseFilters(searchDifficulty, searchDuration, searchRating)
	if err != nil {
		return err
	}

	out, err := search.Run(content, search.Query{
		Term:     strings.Join(args, " "),
		Category: strings.ToLower(searchCategory),
		Filters:  filters,
	})
	if err != nil {
		return err
	}
	logging.Debug("Search finished",
		zap.String("term", out.Query.Term),
		zap.Int("results", len(out.Results)),
	)

	p := newPrinter(cmd)
	if format == ui.FormatJSON {
		return p.PrintJSON(out)
	}

	params := []ui.Param{{Key: "Term", Value: out.Query.Term}, {Key: "Category", Value: out.Query.Category}}
	for _, f := range search.Fields {
		if out.Query.Filters.Get(f) != search.Options(f)[0].Value {
			params = append(params, ui.Param{Key: f.String(), Value: out.Query.Filters.Label(f)})
		}
	}
	p.PrintHeader("SEARCH", "eduportal search", params...)

	if len(out.Results) == 0 {
		r := ui.NewWarningResult("No results").SetWidth(p.Width())
		if out.Suggestion != "" {
			r.AddDetail("Did you mean", out.Suggestion)
		}
		p.Println(r.Render())
		return nil
	}

	for _, r := range out.Results {
		p.Println(ui.RenderSearchResult(r, format))
		if format == ui.FormatDetailed {
			p.Newline()
		}
	}
	return nil
}

// config command flags
var configForce bool

// configCmd manages the preferences file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
	Long: `Create, show and locate the preferences file.

The file lives in the platform config directory unless EDUPORTAL_CONFIG
points elsewhere. EDUPORTAL_* environment variables override its values,
e.g. EDUPORTAL_PREFERENCES_DARK_MODE=true.`,
	// The preferences file may be the thing being repaired, so config
	// commands do not load it up front.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with default values",
	Example: `  # Create the file
  eduportal config init

  # Replace an existing file
  eduportal config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		newPrinter(cmd).Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	p := newPrinter(cmd)

	if err := config.Init(path, configForce); err != nil {
		if !errors.Is(err, config.ErrExists) {
			p.PrintError("Could not write preferences", err)
			return err
		}
		if !p.Confirm(cmd.InOrStdin(), "Preferences file exists",
			[]string{path, "Your current preferences will be replaced with defaults"},
			"Overwrite it?") {
			return nil
		}
		if err := config.Init(path, true); err != nil {
			p.PrintError("Could not write preferences", err)
			return err
		}
	}

	logging.Info("Preferences written", zap.String("path", path))
	p.PrintSuccess("Preferences written", ui.Param{Key: "Path", Value: path})
	return nil
}
