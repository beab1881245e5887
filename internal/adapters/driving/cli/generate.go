package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	generateMeta   metadataFlags
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a QR stamp PNG from metadata",
	Long: `Validates the metadata, encodes it as the canonical payload and
writes the rendered QR code to a PNG file.

The output path defaults to <name>.png in the configured output
directory.`,
	RunE: runGenerate,
}

func init() {
	generateMeta.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output PNG path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if stampService == nil {
		return errors.New("stamp service not configured")
	}

	ctx := context.Background()
	meta, err := generateMeta.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	out := generateOutput
	if out == "" {
		out = meta.Name + ".png"
		if settingsService != nil {
			settings, err := settingsService.Get()
			if err == nil && settings != nil && settings.Output.Dir != "" {
				out = filepath.Join(settings.Output.Dir, out)
			}
		}
	}

	if err := stampService.SaveTo(ctx, meta, out); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	cmd.Printf("Wrote %s\n", out)
	return nil
}
