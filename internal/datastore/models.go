package datastore

// Event is the persisted row shape for the events table. Nullable columns use
// pointers so absent fields land as NULL rather than empty strings.
type Event struct {
	ID            int     `gorm:"primaryKey;autoIncrement:false"`
	Name          string  `gorm:"not null"`
	Date          *string `gorm:"index"`
	Time          *string
	Location      *string
	Description   *string
	URL           *string `gorm:"column:url"`
	ImageURL      *string `gorm:"column:image_url"`
	Source        *string
	BusinessID    *int `gorm:"column:business_id;index"`
	MatchStrategy *string
	MatchScore    *int
}

// TableName keeps the legacy table name.
func (Event) TableName() string {
	return "events"
}

// Business is the persisted row shape for the venue catalog. The table keeps
// its legacy name and column set; the import pipeline only reads id, name,
// and location.
type Business struct {
	ID          int    `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	Location    *string
	Description *string
	Category    *string
	Rating      *float64
	ImageURL    *string `gorm:"column:image_url"`
	Website     *string
	Phone       *string
	Email       *string
	Source      *string
}

// TableName keeps the legacy table name.
func (Business) TableName() string {
	return "businesses"
}

// nullable converts an empty string to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// text converts a nullable column back to the pipeline's empty-string-means-
// absent convention.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
