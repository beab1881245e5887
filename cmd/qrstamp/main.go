// Command qrstamp is the entry point for the QR stamping tool. It wires
// the driven adapters to the core services and hands them to the CLI.
package main

import (
	"fmt"
	"os"

	configfile "github.com/caddraft/qrstamp-cli/internal/adapters/driven/config/file"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/host/dispatch"
	hostmemory "github.com/caddraft/qrstamp-cli/internal/adapters/driven/host/memory"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/logging"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/qr"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driven/storage/tempfile"
	"github.com/caddraft/qrstamp-cli/internal/adapters/driving/cli"
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logging.Verbose{}

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	// The in-memory host stands in for a CAD plugin host. It is seeded
	// with a demo sheet so every command works out of the box; a real
	// host adapter would replace it behind the same port.
	document := hostmemory.NewDocument()
	document.AddSheet(domain.Sheet{
		ID:      "demo-sheet",
		Name:    "Demo Sheet",
		Outline: domain.Rect{Max: domain.Point{X: 4, Y: 3}},
	}, map[string]string{
		domain.AttrSheetNumber:     "A-101",
		domain.AttrSheetName:       "Demo Sheet",
		domain.AttrCurrentRevision: "A",
		domain.AttrCheckedBy:       "QS",
	})

	// Host calls are funnelled through a single-slot executor, matching
	// the one-request-at-a-time contract of plugin host contexts.
	host := dispatch.Wrap(document)
	defer host.Close()

	store := tempfile.NewStore(os.TempDir(), log)
	stampService := services.NewStampService(qr.New(), host, store, services.NewPlanner(), settingsService, log)
	sheetService := services.NewSheetService(host, log)

	cli.SetServices(stampService, sheetService, settingsService)
	return cli.Execute()
}
