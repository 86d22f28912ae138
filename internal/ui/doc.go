// Package ui provides terminal output components for the non-interactive
// eduportal commands.
//
// The interactive portal lives in internal/portal/tui. The commands here
// (`catalog`, `search`, `config`) print once and exit, using Lipgloss for
// styling:
//
//   - Header: Command banner showing what was listed and with which options
//   - Listing: Course, tutorial, week and search result renderers in
//     detailed or compact form
//   - Result: Success/failure/warning boxes
//   - Printer: Writes the above to an io.Writer sized to the terminal,
//     or writes JSON for --format json
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Tutorials", "eduportal catalog tutorials",
//	    ui.Param{Key: "Sort", Value: "Most Popular"})
//	for _, t := range tutorials {
//	    p.Println(ui.RenderTutorial(t, ui.FormatDetailed))
//	}
//
// # Logging Integration
//
// Logging is controlled via EDUPORTAL_LOG_LEVEL or --log-level. When unset,
// zap logging is silent so the curated output is displayed cleanly.
package ui
