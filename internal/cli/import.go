package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/datastore"
	"github.com/pfrederiksen/charleston-events/internal/event"
	"github.com/pfrederiksen/charleston-events/internal/importer"
)

var (
	flagImportCSV    string
	flagImportSource string
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import event records from a CSV file",
		Long: `Reads event records from a CSV file with a header row, links them to
known venues, and inserts the non-duplicate records into the database.
Recognized columns include name, date, time, location, description,
url, image_url, and source.`,
		RunE: runImport,
	}

	cmd.Flags().StringVar(&flagImportCSV, "csv", "", "Path to the CSV file to import (required)")
	cmd.Flags().StringVar(&flagImportSource, "source", "csv", "Source label for records without one")

	cmd.MarkFlagRequired("csv")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	log := newLogger(settings)

	raws, err := readCSVRecords(flagImportCSV)
	if err != nil {
		return fmt.Errorf("reading %s: %w", flagImportCSV, err)
	}
	log.Debugf("Read %d records from %s", len(raws), flagImportCSV)

	store, err := datastore.Open(settings.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	imp, err := importer.New(store, log)
	if err != nil {
		return fmt.Errorf("initializing importer: %w", err)
	}

	stats, err := imp.Import(flagImportSource, raws)
	if err != nil {
		return fmt.Errorf("importing events: %w", err)
	}

	printStats(cmd.OutOrStdout(), stats)
	return nil
}

// readCSVRecords reads a headered CSV file into raw records. Header names
// are taken as-is; the normalizer handles casing and aliases.
func readCSVRecords(path string) ([]event.Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var raws []event.Raw
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		raw := make(event.Raw, len(header))
		for i, col := range header {
			if i < len(row) {
				raw[col] = row[i]
			}
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

func printStats(w io.Writer, stats importer.Stats) {
	fmt.Fprintf(w, "Imported %d events (%d duplicates skipped, %d linked to venues)\n",
		stats.Imported, stats.Duplicates, stats.VenueMatches)
}
