package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/datastore"
	"github.com/pfrederiksen/charleston-events/internal/importer"
	"github.com/pfrederiksen/charleston-events/internal/scraper"
)

var (
	flagScrapeURL    string
	flagScrapeSource string
)

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape a calendar page and import its events",
		Long: `Fetches a calendar listing page, extracts event records from its
date headings and paragraphs, and imports the non-duplicate records
into the database.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagScrapeURL, "url", "", "Calendar page URL (overrides config)")
	cmd.Flags().StringVar(&flagScrapeSource, "source", "", "Source label for scraped records (overrides config)")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagScrapeURL != "" {
		settings.Scraper.URL = flagScrapeURL
	}
	if flagScrapeSource != "" {
		settings.Scraper.Source = flagScrapeSource
	}
	log := newLogger(settings)

	sc := scraper.New(settings.Scraper.URL, settings.Scraper.Source, log)

	log.Debugf("Fetching %s", settings.Scraper.URL)
	raws, err := sc.FetchRecords()
	if err != nil {
		return fmt.Errorf("scraping %s: %w", settings.Scraper.URL, err)
	}
	log.Infof("Scraped %d records from %s", len(raws), settings.Scraper.URL)

	store, err := datastore.Open(settings.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	imp, err := importer.New(store, log)
	if err != nil {
		return fmt.Errorf("initializing importer: %w", err)
	}

	stats, err := imp.Import(settings.Scraper.Source, raws)
	if err != nil {
		return fmt.Errorf("importing events: %w", err)
	}

	printStats(cmd.OutOrStdout(), stats)
	return nil
}
