package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/charleston-events/internal/event"
)

const defaultEventDuration = 2 * time.Hour

// GenerateICS generates an iCalendar (.ics) document for a set of event
// records. Records with a parseable clock time become timed entries in
// floating local time; the rest become all-day entries. Records without a
// date are skipped.
func GenerateICS(records []*event.Record, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//Charleston Events//charleston-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(now)
	for _, rec := range records {
		writeEvent(&ics, rec, stamp)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

func writeEvent(ics *strings.Builder, rec *event.Record, stamp string) {
	date, err := time.Parse("2006-01-02", rec.Date)
	if err != nil {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:event-%d@charleston-events\r\n", rec.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))

	if hour, minute, ok := parseClock(rec.Time); ok {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
		end := start.Add(defaultEventDuration)
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", start.Format("20060102T150405")))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", end.Format("20060102T150405")))
	} else {
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", date.AddDate(0, 0, 1).Format("20060102")))
	}

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(rec.Name)))

	if rec.Description != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(rec.Description)))
	}
	if rec.Location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Location)))
	}
	if rec.URL != "" {
		ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.URL))
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)

// parseClock extracts a 24-hour clock from a display time like "7:30 pm"
// or "5pm".
func parseClock(s string) (hour, minute int, ok bool) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, false
	}
	if matches[2] != "" {
		minute, err = strconv.Atoi(matches[2])
		if err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	meridiem := strings.ToLower(matches[3])
	if meridiem == "pm" && hour != 12 {
		hour += 12
	}
	if meridiem == "am" && hour == 12 {
		hour = 0
	}

	return hour, minute, true
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
