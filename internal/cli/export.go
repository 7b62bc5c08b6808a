package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/calendar"
	"github.com/pfrederiksen/charleston-events/internal/datastore"
)

var flagExportOut string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored events as an iCalendar file",
		Long: `Exports stored events as an iCalendar (.ics) document, optionally
narrowed by the same criteria as the list command. Writes to stdout
unless --out is given.`,
		RunE: runExport,
	}

	addFilterFlags(cmd)
	cmd.Flags().StringVar(&flagExportOut, "out", "", "Output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := buildFilter()
	if err != nil {
		return err
	}

	store, err := datastore.Open(settings.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	records, err := store.ListEvents()
	if err != nil {
		return fmt.Errorf("listing events: %w", err)
	}

	ics := calendar.GenerateICS(f.Apply(records), time.Now())

	if flagExportOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), ics)
		return nil
	}

	if err := os.WriteFile(flagExportOut, []byte(ics), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	return nil
}
