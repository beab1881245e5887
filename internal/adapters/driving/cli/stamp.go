package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

var (
	stampMeta   metadataFlags
	stampSheet  string
	stampPolicy string
)

var stampCmd = &cobra.Command{
	Use:   "stamp",
	Short: "Place the QR stamp on a drawing sheet",
	Long: `Generates the QR stamp and inserts it into the host document as a
single transaction. If the insertion fails at any step the document is
left unchanged.

Placement policies:
  default_corner   - upper-left corner of the sheet outline
  quadrant_offset  - centre of the upper-left quadrant
  random_safe_zone - random position inside the title-block safe zone`,
	RunE: runStamp,
}

func init() {
	stampMeta.register(stampCmd)
	stampCmd.Flags().StringVar(&stampSheet, "sheet", "", "sheet ID to stamp (default the active sheet)")
	stampCmd.Flags().StringVar(&stampPolicy, "policy", "", "placement policy (default from settings)")
	rootCmd.AddCommand(stampCmd)
}

func runStamp(cmd *cobra.Command, _ []string) error {
	if stampService == nil {
		return errors.New("stamp service not configured")
	}
	if sheetService == nil {
		return errors.New("sheet service not configured")
	}

	ctx := context.Background()
	meta, err := stampMeta.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	sheetID := stampSheet
	if sheetID == "" {
		sheet, err := sheetService.Active(ctx)
		if err != nil {
			return err
		}
		sheetID = sheet.ID
	}

	policy, err := resolvePolicy()
	if err != nil {
		return err
	}

	result, err := stampService.Stamp(ctx, meta, sheetID, policy)
	if err != nil {
		return fmt.Errorf("stamp failed: %w", err)
	}

	cmd.Printf("Placed stamp %s on sheet %s at (%.2f, %.2f) ft\n",
		result.Instance, sheetID, result.Spec.Anchor.X, result.Spec.Anchor.Y)
	return nil
}

// resolvePolicy picks the policy from the --policy flag, falling back to
// the configured default.
func resolvePolicy() (domain.PlacementPolicy, error) {
	if stampPolicy != "" {
		return domain.ParsePlacementPolicy(stampPolicy)
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err == nil && settings != nil {
			return settings.Placement.Policy, nil
		}
	}
	return domain.PolicyQuadrantOffset, nil
}
