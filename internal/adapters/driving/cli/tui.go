package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for qrstamp.

The TUI provides a metadata form with autofill from the active sheet,
an inline QR preview, and one-key stamping.

Controls:
  Tab/↓    - Next field
  Shift+Tab/↑ - Previous field
  Ctrl+F   - Autofill from active sheet
  Ctrl+P   - Preview QR
  Ctrl+S   - Stamp active sheet
  Esc      - Clear error / quit
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	// Recover panics so the terminal is restored with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Stamp:    stampService,
		Sheet:    sheetService,
		Settings: settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
