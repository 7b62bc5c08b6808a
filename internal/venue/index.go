package venue

import "strings"

// Entry is a catalog venue with its cleaned name and location precomputed for
// fuzzy comparison.
type Entry struct {
	Venue
	CleanName     string
	CleanLocation string
}

// Index holds the lookup structures built from the venue catalog: exact-name
// and exact-location maps plus an inverted keyword index from significant
// name tokens to venue ids. It is built once per ingestion run and never
// mutated afterwards; matcher calls receive it by parameter rather than
// through any shared global.
type Index struct {
	// Entries preserves catalog order, which the matcher relies on for
	// deterministic tie-breaking.
	Entries []Entry

	byName     map[string]int
	byLocation map[string]int
	keywords   map[string][]int
}

// Build constructs an Index from the venue catalog. It never fails: venues
// without a name are skipped by the name lookups, venues without a location
// by the location lookup. Name collisions resolve last-write-wins; catalogs
// are assumed curated, so collisions are rare and not worth reporting.
func Build(venues []Venue) *Index {
	ix := &Index{
		Entries:    make([]Entry, 0, len(venues)),
		byName:     make(map[string]int),
		byLocation: make(map[string]int),
		keywords:   make(map[string][]int),
	}

	for _, v := range venues {
		ix.Entries = append(ix.Entries, Entry{
			Venue:         v,
			CleanName:     Clean(v.Name),
			CleanLocation: Clean(v.Location),
		})

		if v.Name != "" {
			ix.byName[strings.ToLower(v.Name)] = v.ID

			for _, tok := range Tokenize(v.Name) {
				if len(tok) < keywordMinLen {
					continue
				}
				if !containsID(ix.keywords[tok], v.ID) {
					ix.keywords[tok] = append(ix.keywords[tok], v.ID)
				}
			}
		}

		if v.Location != "" {
			ix.byLocation[strings.ToLower(v.Location)] = v.ID
		}
	}

	return ix
}

// NameID returns the venue id whose name matches exactly, case-insensitively.
func (ix *Index) NameID(name string) (int, bool) {
	id, ok := ix.byName[strings.ToLower(name)]
	return id, ok
}

// LocationID returns the venue id whose location matches exactly,
// case-insensitively.
func (ix *Index) LocationID(location string) (int, bool) {
	id, ok := ix.byLocation[strings.ToLower(location)]
	return id, ok
}

// KeywordIDs returns the venue ids whose names contain the given token, in
// catalog order. The token must already be lowercase.
func (ix *Index) KeywordIDs(token string) []int {
	return ix.keywords[token]
}

// Len returns the number of venues in the index.
func (ix *Index) Len() int {
	return len(ix.Entries)
}

func containsID(ids []int, id int) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
