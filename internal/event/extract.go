package event

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// rolloverThreshold is how far in the past an inferred-year date may be
	// before it is assumed to belong to next year. Recurring annual listings
	// routinely omit the year, so "March 3" seen in September is next March,
	// not last March.
	rolloverThreshold = 180 * 24 * time.Hour

	// futureHorizon is how far ahead a resolved date may be before it is
	// treated as a parse error rather than a real far-future event.
	futureHorizon = 365 * 24 * time.Hour
)

const (
	fullMonths   = `January|February|March|April|May|June|July|August|September|October|November|December`
	abbrevMonths = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`
)

// Date patterns are tried in order; the first match wins. Month-name forms
// tolerate ordinal suffixes (3rd, 21st) and an optional comma before the year.
var (
	fullMonthDayPattern   = regexp.MustCompile(`(?i)\b(` + fullMonths + `)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`)
	abbrevMonthDayPattern = regexp.MustCompile(`(?i)\b(` + abbrevMonths + `)[a-z]*\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?`)
	dayBeforeMonthPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + fullMonths + `)(?:,?\s+(\d{4}))?`)
	numericDatePattern    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	isoDatePattern        = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
)

// Time patterns are tried in order. The phrase-anchored form runs first so a
// time introduced by "at"/"from"/"starting at" beats an earlier bare mention
// (ticket prices, door times) in the same sentence.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:\bat|\bfrom|\bstarting\s+at)\s+(\d{1,2}(?::\d{2})?\s*[ap]m)`),
	regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[ap]m)`),
	regexp.MustCompile(`(?i)(\d{1,2}\s*[ap]m)`),
}

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ExtractDate scans free text for the first recognizable date and returns it
// as YYYY-MM-DD, or "" if no pattern matches. Dates without a year default to
// the current year, rolled forward when that would put them deep in the past.
func ExtractDate(text string) string {
	return ExtractDateAt(text, time.Now())
}

// ExtractDateAt is ExtractDate with an explicit clock for the year
// inference, keeping callers that carry their own clock deterministic.
func ExtractDateAt(text string, now time.Time) string {
	if text == "" {
		return ""
	}

	for _, monthFirst := range []*regexp.Regexp{fullMonthDayPattern, abbrevMonthDayPattern} {
		if m := monthFirst.FindStringSubmatch(text); m != nil {
			if date := resolveDate(m[1], m[2], m[3], now); date != "" {
				return date
			}
		}
	}

	if m := dayBeforeMonthPattern.FindStringSubmatch(text); m != nil {
		if date := resolveDate(m[2], m[1], m[3], now); date != "" {
			return date
		}
	}

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		if date := formatDate(m[3], m[1], m[2]); date != "" {
			return date
		}
	}

	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		if date := formatDate(m[1], m[2], m[3]); date != "" {
			return date
		}
	}

	return ""
}

// resolveDate turns a month name, day, and optional year into YYYY-MM-DD.
// A missing year defaults to the current year; if that lands the date more
// than rolloverThreshold in the past, the year is bumped forward by one.
func resolveDate(monthName, dayText, yearText string, now time.Time) string {
	month, ok := monthsByPrefix[strings.ToLower(monthName)[:3]]
	if !ok {
		return ""
	}
	day, err := strconv.Atoi(dayText)
	if err != nil {
		return ""
	}

	inferredYear := yearText == ""
	year := now.Year()
	if !inferredYear {
		year, err = strconv.Atoi(yearText)
		if err != nil {
			return ""
		}
	}

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Month() != month || date.Day() != day {
		// Day overflowed the month (e.g. February 30); not a real date.
		return ""
	}

	if inferredYear && now.Sub(date) > rolloverThreshold {
		date = date.AddDate(1, 0, 0)
	}

	return date.Format("2006-01-02")
}

// formatDate normalizes numeric year/month/day strings to YYYY-MM-DD,
// rejecting values that do not form a real calendar date.
func formatDate(yearText, monthText, dayText string) string {
	year, err1 := strconv.Atoi(yearText)
	month, err2 := strconv.Atoi(monthText)
	day, err3 := strconv.Atoi(dayText)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	if month < 1 || month > 12 {
		return ""
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Month() != time.Month(month) || date.Day() != day {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ExtractTime scans free text for a clock time ("7:30 pm", "7 pm",
// "starting at 7pm"), preferring one introduced by "at"/"from"/"starting at"
// over a bare mention, and returns it with normalized whitespace, or "" if
// none is found.
func ExtractTime(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range timePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.Join(strings.Fields(m[1]), " ")
		}
	}
	return ""
}

// WithinHorizon reports whether a resolved YYYY-MM-DD date is close enough to
// now to be plausible. Dates more than a year out are treated as parse errors
// and rejected; unparseable or empty dates are allowed through so events
// without dates remain importable.
func WithinHorizon(date string, now time.Time) bool {
	if date == "" {
		return true
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	return parsed.Sub(now) <= futureHorizon
}
