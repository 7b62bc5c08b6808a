package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/datastore"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := datastore.Open(settings.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	events, err := store.CountEvents()
	if err != nil {
		return fmt.Errorf("counting events: %w", err)
	}
	linked, err := store.CountLinkedEvents()
	if err != nil {
		return fmt.Errorf("counting linked events: %w", err)
	}
	businesses, err := store.CountBusinesses()
	if err != nil {
		return fmt.Errorf("counting businesses: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Events:     %d\n", events)
	fmt.Fprintf(out, "  linked:   %d\n", linked)
	fmt.Fprintf(out, "Businesses: %d\n", businesses)
	return nil
}
