// Package importer drives the per-event ingestion pipeline: normalize,
// dedup-check, venue-match, persist. One Importer serves one ingestion run;
// it loads the venue catalog and the existing-event identities once up front,
// then processes any number of sources sequentially, so duplicates are caught
// both against the store and across sources within the run.
//
// The importer is strictly single-threaded. Running two importers against the
// same store concurrently is unsupported: both could claim the same next id
// or admit the same event.
package importer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pfrederiksen/charleston-events/internal/event"
	"github.com/pfrederiksen/charleston-events/internal/match"
	"github.com/pfrederiksen/charleston-events/internal/venue"
)

// Store is the persistence collaborator the importer reads from and writes
// to. InsertEvents must be atomic: either every record in the batch is
// persisted or none are.
type Store interface {
	ListVenues() ([]venue.Venue, error)
	ListEventIdentities() ([]event.Identity, error)
	MaxEventID() (int, bool, error)
	InsertEvents(records []*event.Record) error
}

// Stats summarizes one Import call. Records dropped for having no name are
// routine scrape noise and are not counted anywhere.
type Stats struct {
	Imported     int
	Duplicates   int
	VenueMatches int
}

// Importer runs the ingestion pipeline against one store and one venue
// catalog snapshot.
type Importer struct {
	store    Store
	index    *venue.Index
	existing map[event.Identity]struct{}
	nextID   int
	log      *logrus.Logger
}

// New loads the venue catalog, existing event identities, and the current
// maximum event id from the store, and returns an Importer ready to ingest.
func New(store Store, log *logrus.Logger) (*Importer, error) {
	venues, err := store.ListVenues()
	if err != nil {
		return nil, fmt.Errorf("loading venues: %w", err)
	}

	identities, err := store.ListEventIdentities()
	if err != nil {
		return nil, fmt.Errorf("loading existing events: %w", err)
	}
	existing := make(map[event.Identity]struct{}, len(identities))
	for _, id := range identities {
		existing[id] = struct{}{}
	}

	maxID, found, err := store.MaxEventID()
	if err != nil {
		return nil, fmt.Errorf("loading max event id: %w", err)
	}
	nextID := 0
	if found {
		nextID = maxID + 1
	}

	log.WithFields(logrus.Fields{
		"venues":          len(venues),
		"existing_events": len(identities),
	}).Debug("importer initialized")

	return &Importer{
		store:    store,
		index:    venue.Build(venues),
		existing: existing,
		nextID:   nextID,
		log:      log,
	}, nil
}

// IsDuplicate reports whether an event with the exact same (name, date) pair
// has already been admitted, either in the store or earlier in this run.
// The comparison is deliberately case-sensitive and unnormalized.
func (imp *Importer) IsDuplicate(id event.Identity) bool {
	_, ok := imp.existing[id]
	return ok
}

// Import runs the pipeline over one source's raw records, in input order, and
// persists all admitted records in a single atomic batch. On persistence
// failure nothing is committed, the run's dedup state is restored, and zero
// counts are returned alongside the error.
func (imp *Importer) Import(source string, raws []event.Raw) (Stats, error) {
	var stats Stats
	var batch []*event.Record
	var admitted []event.Identity

	for _, raw := range raws {
		rec, ok := event.Normalize(raw, source)
		if !ok {
			// No usable name: routine data-quality noise, dropped silently.
			continue
		}

		identity := rec.Identity()
		if imp.IsDuplicate(identity) {
			stats.Duplicates++
			continue
		}

		if r := match.Find(rec.Name, rec.Location, imp.index); r.Found() {
			id := r.VenueID
			rec.BusinessID = &id
			rec.MatchStrategy = string(r.Strategy)
			rec.MatchScore = r.Score
			stats.VenueMatches++
		}

		rec.ID = imp.nextID + len(batch)
		batch = append(batch, rec)
		imp.existing[identity] = struct{}{}
		admitted = append(admitted, identity)
		stats.Imported++
	}

	if len(batch) > 0 {
		if err := imp.store.InsertEvents(batch); err != nil {
			for _, identity := range admitted {
				delete(imp.existing, identity)
			}
			return Stats{}, fmt.Errorf("inserting %d events from %s: %w", len(batch), source, err)
		}
		imp.nextID += len(batch)
	}

	imp.log.WithFields(logrus.Fields{
		"source":        source,
		"imported":      stats.Imported,
		"duplicates":    stats.Duplicates,
		"venue_matches": stats.VenueMatches,
	}).Info("import finished")

	return stats, nil
}
