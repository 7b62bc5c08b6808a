package filter

import (
	"testing"

	"github.com/pfrederiksen/charleston-events/internal/event"
)

func intPtr(v int) *int { return &v }

func sampleRecords() []*event.Record {
	return []*event.Record{
		{ID: 1, Name: "Food Truck Friday", Date: "2024-06-07", Location: "Riverfront Park", Source: "holycitysinner"},
		{ID: 2, Name: "Live Jazz Night", Date: "2024-06-08", Location: "The Gin Joint", Source: "holycitysinner", BusinessID: intPtr(12)},
		{ID: 3, Name: "Farmers Market", Date: "2024-06-11", Location: "Marion Square", Source: "csv", BusinessID: intPtr(4)},
		{ID: 4, Name: "Undated Popup", Location: "King Street", Source: "csv"},
	}
}

func TestFilterMatches(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{
			name:   "empty filter matches all",
			filter: Filter{},
			want:   []int{1, 2, 3, 4},
		},
		{
			name:   "date range",
			filter: Filter{DateFrom: "2024-06-08", DateTo: "2024-06-30"},
			want:   []int{2, 3},
		},
		{
			name:   "date from inclusive",
			filter: Filter{DateFrom: "2024-06-07"},
			want:   []int{1, 2, 3},
		},
		{
			name:   "undated records fail date criteria",
			filter: Filter{DateTo: "2024-12-31"},
			want:   []int{1, 2, 3},
		},
		{
			name:   "venue substring is case-insensitive",
			filter: Filter{Venues: []string{"gin joint"}},
			want:   []int{2},
		},
		{
			name:   "multiple venues are ORed",
			filter: Filter{Venues: []string{"riverfront", "marion"}},
			want:   []int{1, 3},
		},
		{
			name:   "source exact match",
			filter: Filter{Sources: []string{"CSV"}},
			want:   []int{3, 4},
		},
		{
			name:   "weekends only",
			filter: Filter{WeekendsOnly: true},
			want:   []int{2}, // 2024-06-08 is a Saturday
		},
		{
			name:   "linked only",
			filter: Filter{LinkedOnly: true},
			want:   []int{2, 3},
		},
		{
			name:   "criteria combine with AND",
			filter: Filter{Sources: []string{"csv"}, LinkedOnly: true},
			want:   []int{3},
		},
		{
			name:   "no matches",
			filter: Filter{Venues: []string{"folly beach"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(records)

			var gotIDs []int
			for _, rec := range got {
				gotIDs = append(gotIDs, rec.ID)
			}

			if len(gotIDs) != len(tt.want) {
				t.Fatalf("got ids %v, want %v", gotIDs, tt.want)
			}
			for i, id := range tt.want {
				if gotIDs[i] != id {
					t.Errorf("got ids %v, want %v", gotIDs, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterIsEmpty(t *testing.T) {
	if empty := (&Filter{}).IsEmpty(); !empty {
		t.Error("zero filter should be empty")
	}
	if empty := (&Filter{WeekendsOnly: true}).IsEmpty(); empty {
		t.Error("filter with criteria should not be empty")
	}
}
