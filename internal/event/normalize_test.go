package event

import "testing"

func TestNormalize(t *testing.T) {
	t.Run("capitalized keys", func(t *testing.T) {
		raw := Raw{
			"Name":      "Live Jazz Night",
			"Date":      "2024-05-01",
			"Time":      "7:30 pm",
			"Location":  "The Gin Joint",
			"URL":       "https://example.com/jazz",
			"Image_URL": "https://example.com/jazz.jpg",
			"Source":    "Holy City Sinner",
		}

		rec, ok := Normalize(raw, "fallback")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Name != "Live Jazz Night" {
			t.Errorf("Name = %q", rec.Name)
		}
		if rec.Date != "2024-05-01" {
			t.Errorf("Date = %q", rec.Date)
		}
		if rec.Time != "7:30 pm" {
			t.Errorf("Time = %q", rec.Time)
		}
		if rec.Location != "The Gin Joint" {
			t.Errorf("Location = %q", rec.Location)
		}
		if rec.ImageURL != "https://example.com/jazz.jpg" {
			t.Errorf("ImageURL = %q", rec.ImageURL)
		}
		if rec.Source != "Holy City Sinner" {
			t.Errorf("Source = %q, fallback should not apply", rec.Source)
		}
	})

	t.Run("lowercase keys", func(t *testing.T) {
		rec, ok := Normalize(Raw{"name": "Oyster Roast", "date": "2024-11-02"}, "csv")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Name != "Oyster Roast" || rec.Date != "2024-11-02" {
			t.Errorf("got %q / %q", rec.Name, rec.Date)
		}
	})

	t.Run("aliased keys", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Title": "Gallery Opening", "Link": "https://example.com"}, "")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Name != "Gallery Opening" {
			t.Errorf("Name = %q, want title alias to apply", rec.Name)
		}
		if rec.URL != "https://example.com" {
			t.Errorf("URL = %q, want link alias to apply", rec.URL)
		}
	})

	t.Run("canonical key wins over alias", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Name": "Proper Name", "Title": "Headline"}, "")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Name != "Proper Name" {
			t.Errorf("Name = %q, want canonical key to take priority", rec.Name)
		}
	})

	t.Run("unknown keys dropped", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Name": "Farmers Market", "Vibes": "good"}, "")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Description != "" {
			t.Errorf("unexpected Description %q", rec.Description)
		}
	})

	t.Run("blank values treated as absent", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Name": "Trivia Night", "Date": "  ", "Location": ""}, "")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Date != "" || rec.Location != "" {
			t.Errorf("blank fields should normalize to empty, got %q / %q", rec.Date, rec.Location)
		}
	})

	t.Run("missing name is invalid", func(t *testing.T) {
		if _, ok := Normalize(Raw{"Date": "2024-05-01"}, ""); ok {
			t.Error("record without a name should be invalid")
		}
		if _, ok := Normalize(Raw{"Name": "   "}, ""); ok {
			t.Error("record with a blank name should be invalid")
		}
	})

	t.Run("fallback source applies when absent", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Name": "Block Party"}, "cvb")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.Source != "cvb" {
			t.Errorf("Source = %q, want fallback cvb", rec.Source)
		}
	})

	t.Run("business id parsed", func(t *testing.T) {
		rec, ok := Normalize(Raw{"Name": "Wine Tasting", "Business_ID": "42"}, "")
		if !ok {
			t.Fatal("expected record to be valid")
		}
		if rec.BusinessID == nil || *rec.BusinessID != 42 {
			t.Errorf("BusinessID = %v, want 42", rec.BusinessID)
		}
	})
}

func TestRecordIdentity(t *testing.T) {
	rec := &Record{Name: "Food Truck Friday", Date: "2024-06-07"}
	id := rec.Identity()

	if id != (Identity{Name: "Food Truck Friday", Date: "2024-06-07"}) {
		t.Errorf("Identity() = %+v", id)
	}

	// Identity is exact: capitalization differences produce distinct keys.
	other := &Record{Name: "food truck friday", Date: "2024-06-07"}
	if other.Identity() == id {
		t.Error("identities differing only in case should not be equal")
	}
}
