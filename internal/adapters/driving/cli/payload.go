package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/core/services"
)

var (
	payloadMeta   metadataFlags
	payloadLegacy bool
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Print the canonical QR payload for metadata",
	Long: `Validates the metadata and prints the exact text that would be
encoded into the QR code, without rendering anything.

Use --legacy to print the older pipe-separated form instead of the
versioned JSON payload.`,
	RunE: runPayload,
}

var payloadDecodeCmd = &cobra.Command{
	Use:   "decode [payload]",
	Short: "Decode a scanned payload back into metadata fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayloadDecode,
}

func init() {
	payloadMeta.register(payloadCmd)
	payloadCmd.Flags().BoolVar(&payloadLegacy, "legacy", false, "print the pipe-separated legacy form")
	payloadCmd.AddCommand(payloadDecodeCmd)
	rootCmd.AddCommand(payloadCmd)
}

func runPayload(cmd *cobra.Command, _ []string) error {
	if stampService == nil {
		return errors.New("stamp service not configured")
	}

	ctx := context.Background()
	meta, err := payloadMeta.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	if payloadLegacy {
		if err := stampService.Validate(meta); err != nil {
			return err
		}
		cmd.Println(services.EncodeLegacyPayload(meta))
		return nil
	}

	text, err := stampService.Payload(meta)
	if err != nil {
		return err
	}

	cmd.Println(text)
	return nil
}

func runPayloadDecode(cmd *cobra.Command, args []string) error {
	meta, err := services.DecodePayload(args[0])
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	cmd.Printf("Name:       %s\n", meta.Name)
	cmd.Printf("Sheet name: %s\n", meta.SheetName)
	cmd.Printf("Revision:   %s\n", meta.Revision)
	cmd.Printf("Date:       %s\n", meta.Date)
	cmd.Printf("Checked by: %s\n", meta.CheckedBy)
	return nil
}
