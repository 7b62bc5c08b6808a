// Package datastore persists events and the venue catalog in a SQLite
// database via GORM. It implements the store interface the importer consumes:
// catalog and identity reads happen once per run, and event inserts are
// all-or-nothing.
package datastore

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pfrederiksen/charleston-events/internal/event"
	"github.com/pfrederiksen/charleston-events/internal/venue"
)

// Store wraps the GORM connection.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path and migrates
// the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&Event{}, &Business{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListVenues returns the venue catalog in id order. Called once per ingestion
// run; the catalog is read-only for the run's duration.
func (s *Store) ListVenues() ([]venue.Venue, error) {
	var rows []Business
	if err := s.db.Select("id", "name", "location").Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing businesses: %w", err)
	}

	venues := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		venues = append(venues, venue.Venue{
			ID:       row.ID,
			Name:     row.Name,
			Location: text(row.Location),
		})
	}
	return venues, nil
}

// ListEventIdentities returns the (name, date) pair of every stored event,
// used to seed the deduplication gate.
func (s *Store) ListEventIdentities() ([]event.Identity, error) {
	var rows []Event
	if err := s.db.Select("name", "date").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing event identities: %w", err)
	}

	identities := make([]event.Identity, 0, len(rows))
	for _, row := range rows {
		identities = append(identities, event.Identity{
			Name: row.Name,
			Date: text(row.Date),
		})
	}
	return identities, nil
}

// MaxEventID returns the highest event id in the store, with found=false when
// the table is empty.
func (s *Store) MaxEventID() (int, bool, error) {
	var max sql.NullInt64
	if err := s.db.Model(&Event{}).Select("MAX(id)").Scan(&max).Error; err != nil {
		return 0, false, fmt.Errorf("reading max event id: %w", err)
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int64), true, nil
}

// InsertEvents writes a batch of admitted records in a single transaction.
// If any insert fails the transaction rolls back and nothing is persisted.
func (s *Store) InsertEvents(records []*event.Record) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]Event, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Event{
			ID:            rec.ID,
			Name:          rec.Name,
			Date:          nullable(rec.Date),
			Time:          nullable(rec.Time),
			Location:      nullable(rec.Location),
			Description:   nullable(rec.Description),
			URL:           nullable(rec.URL),
			ImageURL:      nullable(rec.ImageURL),
			Source:        nullable(rec.Source),
			BusinessID:    rec.BusinessID,
			MatchStrategy: nullable(rec.MatchStrategy),
			MatchScore:    matchScore(rec),
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("inserting events: %w", err)
		}
		return nil
	})
}

// matchScore stores a score only for records the matcher actually linked.
func matchScore(rec *event.Record) *int {
	if rec.MatchStrategy == "" {
		return nil
	}
	score := rec.MatchScore
	return &score
}

// ListEvents returns every stored event ordered by date then id. Events
// without a date sort first.
func (s *Store) ListEvents() ([]*event.Record, error) {
	var rows []Event
	if err := s.db.Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	records := make([]*event.Record, 0, len(rows))
	for _, row := range rows {
		rec := &event.Record{
			ID:            row.ID,
			Name:          row.Name,
			Date:          text(row.Date),
			Time:          text(row.Time),
			Location:      text(row.Location),
			Description:   text(row.Description),
			URL:           text(row.URL),
			ImageURL:      text(row.ImageURL),
			Source:        text(row.Source),
			BusinessID:    row.BusinessID,
			MatchStrategy: text(row.MatchStrategy),
		}
		if row.MatchScore != nil {
			rec.MatchScore = *row.MatchScore
		}
		records = append(records, rec)
	}
	return records, nil
}

// UpsertBusiness inserts a venue or, when one with the exact same name
// already exists, overwrites its fields in place. Re-importing a catalog is
// therefore idempotent by name. Returns the venue's id.
func (s *Store) UpsertBusiness(b Business) (int, error) {
	var existing Business
	err := s.db.Where("name = ?", b.Name).First(&existing).Error

	switch {
	case err == nil:
		b.ID = existing.ID
		if err := s.db.Save(&b).Error; err != nil {
			return 0, fmt.Errorf("updating business %q: %w", b.Name, err)
		}
		return b.ID, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&b).Error; err != nil {
			return 0, fmt.Errorf("creating business %q: %w", b.Name, err)
		}
		return b.ID, nil

	default:
		return 0, fmt.Errorf("looking up business %q: %w", b.Name, err)
	}
}

// CountEvents returns the number of stored events.
func (s *Store) CountEvents() (int64, error) {
	var n int64
	err := s.db.Model(&Event{}).Count(&n).Error
	return n, err
}

// CountLinkedEvents returns the number of events linked to a venue.
func (s *Store) CountLinkedEvents() (int64, error) {
	var n int64
	err := s.db.Model(&Event{}).Where("business_id IS NOT NULL").Count(&n).Error
	return n, err
}

// CountBusinesses returns the number of catalog venues.
func (s *Store) CountBusinesses() (int64, error) {
	var n int64
	err := s.db.Model(&Business{}).Count(&n).Error
	return n, err
}
