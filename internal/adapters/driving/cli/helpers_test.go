package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	configmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/config/memory"
	hostmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/host/memory"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/qr"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/storage/tempfile"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/services"
)

// setupTestServices wires the commands to real services over in-memory
// adapters. The host document is seeded with one active sheet carrying a
// full attribute set.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	doc := hostmemory.NewDocument()
	doc.AddSheet(domain.Sheet{
		ID:      "sheet-1",
		Name:    "Ground Floor Plan",
		Outline: domain.Rect{Max: domain.Point{X: 4, Y: 3}},
	}, map[string]string{
		domain.AttrSheetNumber:     "A-101",
		domain.AttrSheetName:       "Ground Floor Plan",
		domain.AttrCurrentRevision: "B",
		domain.AttrIssueDate:       "01/01/24",
		domain.AttrCheckedBy:       "JD",
	})

	store := tempfile.NewStore(t.TempDir(), nil)
	settings := services.NewSettingsService(configmemory.NewConfigStore())
	stamp := services.NewStampService(qr.New(), doc, store, services.NewPlanner(), settings, nil)
	sheet := services.NewSheetService(doc, nil)

	SetServices(stamp, sheet, settings)
	return func() {
		SetServices(nil, nil, nil)
	}
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears parsed values so flag state does not leak between
// tests sharing the package-level commands.
func resetFlags(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}
