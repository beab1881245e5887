package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// metadataFlags holds the shared metadata flag set used by the generate
// and stamp commands.
type metadataFlags struct {
	name      string
	sheetName string
	revision  string
	date      string
	checkedBy string
	fromSheet bool
}

func (f *metadataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "drawing number (e.g. A-101)")
	cmd.Flags().StringVar(&f.sheetName, "sheet-name", "", "sheet name")
	cmd.Flags().StringVar(&f.revision, "revision", "", "current revision")
	cmd.Flags().StringVar(&f.date, "date", "", "issue date, dd/MM/yy or dd/MM/yyyy (default today)")
	cmd.Flags().StringVar(&f.checkedBy, "checked-by", "", "checker initials")
	cmd.Flags().BoolVar(&f.fromSheet, "from-sheet", false, "prefill metadata from the active sheet's attributes")
}

func (f *metadataFlags) reset() {
	*f = metadataFlags{}
}

// resolve builds the metadata record from the flag values. With
// --from-sheet the active sheet's attributes provide the base values and
// explicitly set flags override them.
func (f *metadataFlags) resolve(ctx context.Context, cmd *cobra.Command) (domain.SheetMetadata, error) {
	meta := domain.NewSheetMetadata()

	if f.fromSheet {
		if sheetService == nil {
			return domain.SheetMetadata{}, errors.New("sheet service not configured")
		}
		sheet, err := sheetService.Active(ctx)
		if err != nil {
			return domain.SheetMetadata{}, err
		}
		meta, err = sheetService.Extract(ctx, sheet.ID)
		if err != nil {
			return domain.SheetMetadata{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		meta.Name = f.name
	}
	if flags.Changed("sheet-name") {
		meta.SheetName = f.sheetName
	}
	if flags.Changed("revision") {
		meta.Revision = f.revision
	}
	if flags.Changed("date") {
		meta.Date = f.date
	}
	if flags.Changed("checked-by") {
		meta.CheckedBy = f.checkedBy
	}

	return meta, nil
}
