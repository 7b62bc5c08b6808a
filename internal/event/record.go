package event

// Record is the canonical event shape every raw scraped record is normalized
// into before it reaches the import pipeline. All fields except Name are
// optional; an empty string means the source did not provide the field.
type Record struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date,omitempty"` // YYYY-MM-DD when the extractor resolved it
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Source      string `json:"source,omitempty"`

	// Venue linkage, attached by the matcher during import.
	BusinessID    *int   `json:"business_id,omitempty"`
	MatchStrategy string `json:"match_strategy,omitempty"`
	MatchScore    int    `json:"match_score,omitempty"`
}

// Identity is the deduplication key for an event. Comparison is exact and
// case-sensitive: two events whose names differ only in capitalization are
// treated as distinct.
type Identity struct {
	Name string
	Date string
}

// Identity returns the record's deduplication key.
func (r *Record) Identity() Identity {
	return Identity{Name: r.Name, Date: r.Date}
}
