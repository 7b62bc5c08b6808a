// Package filter narrows stored event records for the list and export
// commands.
//
// Filters combine criteria with AND semantics:
//   - Date ranges (from/to, inclusive, on the record's resolved date)
//   - Venues (case-insensitive substring match on the event location)
//   - Sources (case-insensitive exact match)
//   - Weekends only (Saturday/Sunday)
//   - Linked only (records matched to a known venue)
//
// An empty filter matches every record. Records without a date fail any
// date-based criterion.
package filter

import (
	"strings"
	"time"

	"github.com/pfrederiksen/charleston-events/internal/event"
)

// Filter represents record filtering criteria. Dates are ISO YYYY-MM-DD
// strings matching the format records are stored in.
type Filter struct {
	DateFrom string
	DateTo   string

	// Venue location filtering (case-insensitive substring match)
	Venues []string

	// Source filtering (case-insensitive exact match)
	Sources []string

	// Weekend-only filtering (Saturday/Sunday)
	WeekendsOnly bool

	// Only records linked to a venue
	LinkedOnly bool
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == "" &&
		f.DateTo == "" &&
		len(f.Venues) == 0 &&
		len(f.Sources) == 0 &&
		!f.WeekendsOnly &&
		!f.LinkedOnly
}

// Matches reports whether a record passes all active criteria. An empty
// filter matches all records.
func (f *Filter) Matches(rec *event.Record) bool {
	if f.IsEmpty() {
		return true
	}

	if f.DateFrom != "" || f.DateTo != "" || f.WeekendsOnly {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return false
		}
		if f.DateFrom != "" && rec.Date < f.DateFrom {
			return false
		}
		if f.DateTo != "" && rec.Date > f.DateTo {
			return false
		}
		if f.WeekendsOnly {
			wd := date.Weekday()
			if wd != time.Saturday && wd != time.Sunday {
				return false
			}
		}
	}

	if len(f.Venues) > 0 && !matchesAnySubstring(rec.Location, f.Venues) {
		return false
	}

	if len(f.Sources) > 0 {
		found := false
		for _, src := range f.Sources {
			if strings.EqualFold(rec.Source, src) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.LinkedOnly && rec.BusinessID == nil {
		return false
	}

	return true
}

// Apply returns the records that pass the filter, preserving order.
func (f *Filter) Apply(records []*event.Record) []*event.Record {
	if f.IsEmpty() {
		return records
	}

	var out []*event.Record
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesAnySubstring(value string, needles []string) bool {
	lower := strings.ToLower(value)
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
