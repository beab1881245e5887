package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure QR rendering, placement and output settings.

Keys:
  render.size_px   - square pixel size of the rendered PNG
  render.ecc       - error-correction level (L, M, Q, H)
  placement.policy - default_corner, quadrant_offset or random_safe_zone
  output.dir       - default directory for saved PNG files`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings key",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current settings:")
	cmd.Println()
	cmd.Printf("  render.size_px:   %d\n", settings.Render.SizePx)
	cmd.Printf("  render.ecc:       %s\n", settings.Render.ECC)
	cmd.Printf("  placement.policy: %s\n", settings.Placement.Policy)
	if settings.Output.Dir == "" {
		cmd.Printf("  output.dir:       (current directory)\n")
	} else {
		cmd.Printf("  output.dir:       %s\n", settings.Output.Dir)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "render.size_px":
		size, err := strconv.Atoi(value)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid size %q: want a positive integer", value)
		}
		settings.Render.SizePx = size
	case "render.ecc":
		level := domain.ECCLevel(value)
		if !level.IsValid() {
			return fmt.Errorf("invalid ECC level %q: want L, M, Q or H", value)
		}
		settings.Render.ECC = level
	case "placement.policy":
		policy, err := domain.ParsePlacementPolicy(value)
		if err != nil {
			return err
		}
		settings.Placement.Policy = policy
	case "output.dir":
		settings.Output.Dir = value
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
