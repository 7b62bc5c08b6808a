package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/pfrederiksen/charleston-events/internal/event"
)

const (
	UserAgent = "charleston-events/1.0 (github.com/pfrederiksen/charleston-events)"
	Timeout   = 30 * time.Second

	// minParagraphLen filters out navigation fragments and stray headings
	// when segmenting listing text into candidate events.
	minParagraphLen = 20

	// maxTitleLen caps titles extracted from a paragraph's first sentence.
	maxTitleLen = 100
)

// dateHeadingPattern finds the month-day headings a listing page groups its
// events under. The heading text itself is handed to the date extractor.
var dateHeadingPattern = regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`)

// locationPattern pulls an "at <Venue>" mention out of a paragraph. Venue
// names are expected to start with a capital letter; the match runs to the
// end of the sentence.
var locationPattern = regexp.MustCompile(`at\s+(?:the\s+)?([A-Z][^.]+)`)

// Scraper fetches a calendar-style listing page and extracts raw event
// records from its text.
type Scraper struct {
	client *http.Client
	url    string
	source string
	now    func() time.Time
	log    *logrus.Logger
}

// New creates a Scraper for a listing page. source labels the records it
// produces.
func New(url, source string, log *logrus.Logger) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: Timeout},
		url:    url,
		source: source,
		now:    time.Now,
		log:    log,
	}
}

// FetchRecords fetches the listing page and extracts raw event records from
// its main content.
func (s *Scraper) FetchRecords() ([]event.Raw, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseRecords(resp.Body)
}

// parseRecords extracts raw records from a listing page's HTML.
func (s *Scraper) parseRecords(r io.Reader) ([]event.Raw, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// The listing content lives in an article element on most pages, with
	// .entry-content as the fallback.
	content := doc.Find("article").First()
	if content.Length() == 0 {
		content = doc.Find(".entry-content").First()
	}
	if content.Length() == 0 {
		return nil, nil
	}

	records := s.extractFromText(content.Text())
	s.log.WithFields(logrus.Fields{
		"url":     s.url,
		"records": len(records),
	}).Debug("scraped listing page")

	return records, nil
}

// extractFromText segments listing text on date headings and emits one raw
// record per qualifying paragraph under each heading. Events resolving to a
// date more than a year out are discarded as probable parse errors.
func (s *Scraper) extractFromText(text string) []event.Raw {
	headings := dateHeadingPattern.FindAllStringIndex(text, -1)
	if headings == nil {
		return nil
	}

	now := s.now()
	var records []event.Raw

	for i, heading := range headings {
		date := event.ExtractDateAt(text[heading[0]:heading[1]], now)
		if date == "" {
			continue
		}
		if !event.WithinHorizon(date, now) {
			s.log.WithField("date", date).Debug("discarding far-future date")
			continue
		}

		// Content runs from this heading to the next one (or end of text).
		end := len(text)
		if i < len(headings)-1 {
			end = headings[i+1][0]
		}
		segment := text[heading[1]:end]

		for _, paragraph := range strings.Split(segment, "\n") {
			paragraph = strings.TrimSpace(paragraph)
			if len(paragraph) < minParagraphLen {
				continue
			}

			var location string
			if m := locationPattern.FindStringSubmatch(paragraph); m != nil {
				location = strings.TrimSpace(m[1])
			}

			records = append(records, event.Raw{
				"Name":        titleFromParagraph(paragraph),
				"Date":        date,
				"Time":        event.ExtractTime(paragraph),
				"Location":    location,
				"Description": paragraph,
				"URL":         s.url,
				"Source":      s.source,
			})
		}
	}

	return records
}

// titleFromParagraph uses the paragraph's first sentence as the event name,
// truncated when the sentence runs long.
func titleFromParagraph(paragraph string) string {
	title := paragraph
	if idx := strings.Index(title, "."); idx >= 0 {
		title = title[:idx]
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen] + "..."
	}
	return strings.TrimSpace(title)
}
