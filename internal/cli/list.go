package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/datastore"
	"github.com/pfrederiksen/charleston-events/internal/event"
	"github.com/pfrederiksen/charleston-events/internal/filter"
)

var (
	flagFilterDates    string
	flagFilterVenues   []string
	flagFilterSources  []string
	flagFilterWeekends bool
	flagFilterLinked   bool
)

// addFilterFlags registers the record filtering flags shared by the list
// and export commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFilterDates, "dates", "", "Date range, e.g. 'Jun 1-15', 'June', or '2024-06-01 - 2024-06-30'")
	cmd.Flags().StringSliceVar(&flagFilterVenues, "venue", nil, "Only events whose location contains this text (repeatable)")
	cmd.Flags().StringSliceVar(&flagFilterSources, "from-source", nil, "Only events from this source (repeatable)")
	cmd.Flags().BoolVar(&flagFilterWeekends, "weekends", false, "Only weekend events")
	cmd.Flags().BoolVar(&flagFilterLinked, "linked", false, "Only events linked to a venue")
}

// buildFilter resolves the filter flags into a filter, parsing the date
// range if one was given.
func buildFilter() (*filter.Filter, error) {
	f := &filter.Filter{
		Venues:       flagFilterVenues,
		Sources:      flagFilterSources,
		WeekendsOnly: flagFilterWeekends,
		LinkedOnly:   flagFilterLinked,
	}

	if flagFilterDates != "" {
		from, to, err := filter.ParseDateRange(flagFilterDates)
		if err != nil {
			return nil, fmt.Errorf("parsing --dates: %w", err)
		}
		f.DateFrom = from
		f.DateTo = to
	}

	return f, nil
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored events",
		Long: `Lists stored events ordered by date, optionally narrowed by date
range, venue, source, weekend, or venue-link criteria.`,
		RunE: runList,
	}

	addFilterFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	writeEventList(cmd.OutOrStdout(), f.Apply(records))
	return nil
}

func writeEventList(w io.Writer, records []*event.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}

	for _, rec := range records {
		date := rec.Date
		if date == "" {
			date = "(no date)"
		}
		line := fmt.Sprintf("%s  %s", date, rec.Name)
		if rec.Location != "" {
			line += fmt.Sprintf(" @ %s", rec.Location)
		}
		if rec.Time != "" {
			line += fmt.Sprintf(" (%s)", rec.Time)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d event(s)\n", len(records))
}
