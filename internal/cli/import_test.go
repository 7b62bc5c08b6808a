package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/charleston-events/internal/importer"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp CSV: %v", err)
	}
	return path
}

func TestReadCSVRecords(t *testing.T) {
	path := writeTempCSV(t, strings.Join([]string{
		"name,date,location,time",
		"Oyster Roast,2024-02-10,Bowens Island,5pm",
		"Gallery Opening,2024-02-11,,",
		"",
	}, "\n"))

	raws, err := readCSVRecords(path)
	if err != nil {
		t.Fatalf("readCSVRecords failed: %v", err)
	}

	if len(raws) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raws))
	}

	first := raws[0]
	if first["name"] != "Oyster Roast" {
		t.Errorf("name = %q", first["name"])
	}
	if first["date"] != "2024-02-10" {
		t.Errorf("date = %q", first["date"])
	}
	if first["location"] != "Bowens Island" {
		t.Errorf("location = %q", first["location"])
	}

	second := raws[1]
	if second["location"] != "" {
		t.Errorf("empty column should stay empty, got %q", second["location"])
	}
}

func TestReadCSVRecordsHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "name,date\n")

	raws, err := readCSVRecords(path)
	if err != nil {
		t.Fatalf("readCSVRecords failed: %v", err)
	}
	if len(raws) != 0 {
		t.Errorf("expected no records, got %d", len(raws))
	}
}

func TestReadCSVRecordsEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	if _, err := readCSVRecords(path); err == nil {
		t.Fatal("expected error for empty CSV file")
	}
}

func TestReadCSVRecordsMissingFile(t *testing.T) {
	if _, err := readCSVRecords(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPrintStats(t *testing.T) {
	var buf strings.Builder
	printStats(&buf, importer.Stats{Imported: 3, Duplicates: 2, VenueMatches: 1})

	want := "Imported 3 events (2 duplicates skipped, 1 linked to venues)\n"
	if buf.String() != want {
		t.Errorf("printStats output = %q, want %q", buf.String(), want)
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"import", "scrape", "list", "export", "stats"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q subcommand", name)
		}
	}
}
