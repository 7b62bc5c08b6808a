package event

import (
	"strconv"
	"strings"
)

// Raw is a scraped record before normalization, keyed by whatever field names
// the source uses.
type Raw map[string]string

// fieldAliases lists, per canonical Record field, the lowercased source field
// names that may carry it, in priority order. Sources disagree on
// capitalization ("Name" vs "name") and occasionally on the name itself
// ("Title", "Link"); anything not listed here is dropped.
var fieldAliases = []struct {
	field   string
	aliases []string
}{
	{"name", []string{"name", "title"}},
	{"date", []string{"date"}},
	{"time", []string{"time"}},
	{"location", []string{"location", "venue"}},
	{"description", []string{"description"}},
	{"url", []string{"url", "link"}},
	{"image_url", []string{"image_url", "imageurl", "image"}},
	{"source", []string{"source"}},
	{"business_id", []string{"business_id"}},
}

// Normalize maps a raw scraped record onto the canonical Record shape.
// Unknown keys are dropped, blank values are treated as absent, and a record
// without a usable name is invalid (second return false). When the source
// did not label itself, fallbackSource is used.
func Normalize(raw Raw, fallbackSource string) (*Record, bool) {
	// Fold keys to lowercase once so "Name", "NAME", and "name" all resolve.
	// First non-blank value wins if a source repeats a field across casings.
	folded := make(map[string]string, len(raw))
	for key, value := range raw {
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := folded[key]; !ok {
			folded[key] = value
		}
	}

	rec := &Record{}
	for _, fa := range fieldAliases {
		for _, alias := range fa.aliases {
			value, ok := folded[alias]
			if !ok {
				continue
			}
			switch fa.field {
			case "name":
				rec.Name = value
			case "date":
				rec.Date = value
			case "time":
				rec.Time = value
			case "location":
				rec.Location = value
			case "description":
				rec.Description = value
			case "url":
				rec.URL = value
			case "image_url":
				rec.ImageURL = value
			case "source":
				rec.Source = value
			case "business_id":
				if id, err := strconv.Atoi(value); err == nil {
					rec.BusinessID = &id
				}
			}
			break
		}
	}

	if rec.Name == "" {
		return nil, false
	}

	if rec.Source == "" {
		rec.Source = fallbackSource
	}

	return rec, true
}
