// Package cli implements the command-line interface for charleston-events.
//
// The cli package provides the Cobra-based CLI with subcommands for importing
// event records from CSV files, scraping calendar pages, listing and
// exporting stored events, and reporting database statistics. It coordinates
// the conf, scraper, importer, filter, calendar, and datastore packages.
package cli
