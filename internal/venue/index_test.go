package venue

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "punctuation stripped and lowercased",
			in:   "The Gin Joint, 182 East Bay St.",
			want: "the gin joint 182 east bay st",
		},
		{
			name: "internal whitespace preserved",
			in:   "Charleston  Music Hall",
			want: "charleston  music hall",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The Gin-Joint, 182 East Bay St")
	want := []string{"the", "gin", "joint", "182", "east", "bay", "st"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}

	if got := Tokenize(""); got != nil {
		t.Errorf("Tokenize(\"\") = %v, want nil", got)
	}
}

func TestBuild(t *testing.T) {
	venues := []Venue{
		{ID: 1, Name: "The Gin Joint", Location: "182 East Bay St"},
		{ID: 2, Name: "Charleston Music Hall", Location: "37 John St"},
		{ID: 3, Name: "Music Farm"}, // no location
		{ID: 4, Name: "", Location: "10 Anonymous Ln"},
	}

	ix := Build(venues)

	t.Run("exact name lookup is case-insensitive", func(t *testing.T) {
		id, ok := ix.NameID("the gin joint")
		if !ok || id != 1 {
			t.Errorf("NameID = %d, %v; want 1, true", id, ok)
		}
		if _, ok := ix.NameID("nope"); ok {
			t.Error("unexpected hit for unknown name")
		}
	})

	t.Run("exact location lookup", func(t *testing.T) {
		id, ok := ix.LocationID("182 East Bay St")
		if !ok || id != 1 {
			t.Errorf("LocationID = %d, %v; want 1, true", id, ok)
		}
		// Venue 3 has no location and must not appear.
		if _, ok := ix.LocationID(""); ok {
			t.Error("empty location should not be indexed")
		}
	})

	t.Run("keyword index filters short tokens", func(t *testing.T) {
		if ids := ix.KeywordIDs("joint"); !reflect.DeepEqual(ids, []int{1}) {
			t.Errorf("KeywordIDs(joint) = %v, want [1]", ids)
		}
		// "music" appears in two venue names, catalog order preserved.
		if ids := ix.KeywordIDs("music"); !reflect.DeepEqual(ids, []int{2, 3}) {
			t.Errorf("KeywordIDs(music) = %v, want [2 3]", ids)
		}
		// "the" and "gin" are too short to be keywords.
		if ids := ix.KeywordIDs("gin"); ids != nil {
			t.Errorf("KeywordIDs(gin) = %v, want nil", ids)
		}
	})

	t.Run("nameless venue excluded from name structures", func(t *testing.T) {
		if _, ok := ix.NameID(""); ok {
			t.Error("empty name should not be indexed")
		}
		id, ok := ix.LocationID("10 anonymous ln")
		if !ok || id != 4 {
			t.Errorf("LocationID = %d, %v; want 4, true", id, ok)
		}
	})

	t.Run("name collisions resolve last-write-wins", func(t *testing.T) {
		dup := Build([]Venue{
			{ID: 1, Name: "Blind Tiger"},
			{ID: 2, Name: "Blind Tiger"},
		})
		if id, _ := dup.NameID("blind tiger"); id != 2 {
			t.Errorf("NameID = %d, want 2", id)
		}
	})

	t.Run("entries preserve catalog order with cleaned forms", func(t *testing.T) {
		if ix.Len() != 4 {
			t.Fatalf("Len() = %d, want 4", ix.Len())
		}
		if ix.Entries[0].CleanName != "the gin joint" {
			t.Errorf("CleanName = %q", ix.Entries[0].CleanName)
		}
		if ix.Entries[1].CleanLocation != "37 john st" {
			t.Errorf("CleanLocation = %q", ix.Entries[1].CleanLocation)
		}
	})
}
