// Package match resolves an event's venue by running a staged cascade of
// matching strategies against the venue index.
//
// The cascade order is deliberate: location-based signals are more reliable
// than name-based ones for this domain, so an exact location hit always wins,
// fuzzy location comparisons are tried before fuzzy name comparisons, and the
// keyword fallback only runs when every fuzzy stage has come up empty. The
// first stage that clears its threshold ends the cascade.
package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/pfrederiksen/charleston-events/internal/venue"
)

// Strategy identifies which cascade stage produced a match.
type Strategy string

const (
	LocationExact      Strategy = "location_exact"
	LocationToName     Strategy = "location_to_name"
	LocationToLocation Strategy = "location_to_location"
	NameToName         Strategy = "name_to_name"
	Keyword            Strategy = "keyword"
	None               Strategy = "none"
)

// Thresholds are hand-tuned against observed scrape data. Name-only matches
// are less trustworthy than location-based ones, hence the stricter cutoff.
const (
	locationThreshold = 80 // strict: a score of exactly 80 does not match
	nameThreshold     = 85
	keywordMinPoints  = 2

	locationTokenPoints = 2
	nameTokenPoints     = 1

	// minTargetLen excludes cleaned venue names short enough to match almost
	// anything ("the", "ems") from fuzzy comparison.
	minTargetLen = 3
)

// Result is the outcome of one matcher run. VenueID is only meaningful when
// Found reports true; Score is a 0-100 partial ratio for the fuzzy stages, a
// keyword point total for the fallback, and 100 for an exact location hit.
type Result struct {
	VenueID  int
	Strategy Strategy
	Score    int
}

// Found reports whether any stage produced a venue.
func (r Result) Found() bool {
	return r.Strategy != None
}

// Find runs the strategy cascade for an event's name and location against the
// venue index. It is deterministic for identical inputs and index contents,
// and never fails: absent name or location simply skips the stages that need
// them.
func Find(eventName, eventLocation string, ix *venue.Index) Result {
	if eventLocation != "" {
		if id, ok := ix.LocationID(eventLocation); ok {
			return Result{VenueID: id, Strategy: LocationExact, Score: 100}
		}
	}

	if cleanLocation := venue.Clean(eventLocation); cleanLocation != "" {
		if r, ok := bestFuzzy(cleanLocation, ix, venueName, locationThreshold, LocationToName); ok {
			return r
		}
		if r, ok := bestFuzzy(cleanLocation, ix, venueLocation, locationThreshold, LocationToLocation); ok {
			return r
		}
	}

	if cleanName := venue.Clean(eventName); cleanName != "" {
		if r, ok := bestFuzzy(cleanName, ix, venueName, nameThreshold, NameToName); ok {
			return r
		}
	}

	if r, ok := keywordFallback(eventName, eventLocation, ix); ok {
		return r
	}

	return Result{Strategy: None}
}

func venueName(e venue.Entry) string     { return e.CleanName }
func venueLocation(e venue.Entry) string { return e.CleanLocation }

// bestFuzzy scores the query against one cleaned field of every venue and
// keeps the strictly best score above the threshold. Ties keep the
// first-encountered venue; catalog order is stable, so so is the result.
func bestFuzzy(query string, ix *venue.Index, target func(venue.Entry) string, threshold int, strategy Strategy) (Result, bool) {
	best := Result{Strategy: strategy}
	found := false

	for _, e := range ix.Entries {
		candidate := target(e)
		if len(candidate) <= minTargetLen {
			continue
		}
		score := fuzzy.PartialRatio(query, candidate)
		if score > threshold && score > best.Score {
			best.VenueID = e.ID
			best.Score = score
			found = true
		}
	}

	return best, found
}

// keywordFallback accumulates per-venue points from keyword-index hits:
// location tokens count double because a venue word appearing in the location
// field is much stronger evidence than one appearing in the event name.
// The best total wins if it reaches the minimum; ties keep the venue whose
// first token hit came earliest.
func keywordFallback(eventName, eventLocation string, ix *venue.Index) (Result, bool) {
	points := make(map[int]int)
	var order []int

	score := func(text string, weight int) {
		for _, tok := range venue.Tokenize(text) {
			for _, id := range ix.KeywordIDs(tok) {
				if _, seen := points[id]; !seen {
					order = append(order, id)
				}
				points[id] += weight
			}
		}
	}

	score(eventLocation, locationTokenPoints)
	score(eventName, nameTokenPoints)

	best := Result{Strategy: Keyword}
	for _, id := range order {
		if points[id] > best.Score {
			best.VenueID = id
			best.Score = points[id]
		}
	}

	if best.Score < keywordMinPoints {
		return Result{Strategy: None}, false
	}
	return best, true
}
