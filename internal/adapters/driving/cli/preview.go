package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var previewMeta metadataFlags

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the QR stamp as terminal blocks",
	Long:  `Validates the metadata and prints the QR code to the terminal using block characters, for a quick visual check before stamping.`,
	RunE:  runPreview,
}

func init() {
	previewMeta.register(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if stampService == nil {
		return errors.New("stamp service not configured")
	}

	ctx := context.Background()
	meta, err := previewMeta.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	blocks, err := stampService.Preview(ctx, meta)
	if err != nil {
		return err
	}

	cmd.Print(blocks)
	return nil
}
