// Eduportal is a terminal learning portal.
//
// It browses the course catalog, tutorials and the week content page
// (class notes, videos, questions, checklist and todo list) in an
// interactive full-screen interface, and offers plain commands for
// listing and searching the same catalog from scripts.
//
// Usage:
//
//	eduportal [command] [flags]
//
// Running without arguments launches the interactive portal.
// See 'eduportal --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/eduportal/internal/logging"
	"github.com/muurk/eduportal/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eduportal",
	Short: "EduPortal terminal learning portal",
	Long: `A terminal learning portal for browsing courses, tutorials and weekly
class content.

The interactive portal has a navbar, a search bar with filters, a home page
of featured courses, a tutorials page and the Week One content page with
class notes, videos, questions, a checklist and a todo list.

If no command is specified, the interactive portal will launch automatically.`,
	Version: version.Version,
	Example: `  # Launch the portal
  eduportal

  # Open straight on the week content in dark mode
  eduportal --view /week-one --dark

  # Use a custom catalog
  eduportal --catalog ./my-course.yaml

  # Search from a script
  eduportal search react --format json`,
	SilenceUsage: true,
	RunE:         runPortal,
}

func init() {
	// Assigned here rather than in the literal: loadSettings refers to
	// rootCmd, which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = loadSettings

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Build information needs no preferences or catalog
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			return newPrinter(cmd).PrintJSON(version.Current())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "eduportal %s\n", version.Full())
		return nil
	},
}

var versionJSON bool

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build information as JSON")
}
