// Package cli provides the cobra command-line interface for qrstamp.
// It is a driving adapter: commands depend only on the driving ports and
// receive their service implementations from the composition root.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
	"github.com/caddraft/qrstamp-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Service implementations injected by the composition root.
var (
	stampService    driving.StampService
	sheetService    driving.SheetService
	settingsService driving.SettingsService
)

// SetServices injects the service implementations for all commands.
func SetServices(stamp driving.StampService, sheet driving.SheetService, settings driving.SettingsService) {
	stampService = stamp
	sheetService = sheet
	settingsService = settings
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "qrstamp",
	Short: "Stamp drawing sheets with QR codes encoding their metadata",
	Long: `qrstamp generates a QR code from drawing metadata (drawing number,
sheet name, revision, issue date, checked-by) and places it as an image
on a drawing sheet, or saves it as a PNG file.

Metadata can be entered by hand via flags, or extracted from the active
sheet's built-in attributes with --from-sheet.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "print pipeline diagnostics to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
