package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var (
	monthNames = `(?i)(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)`

	sameMonthRangePattern  = regexp.MustCompile(`^` + monthNames + `\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRangePattern = regexp.MustCompile(`^` + monthNames + `\s+(\d{1,2})\s*-\s*` + monthNames + `\s+(\d{1,2})$`)
	wholeMonthPattern      = regexp.MustCompile(`^` + monthNames + `$`)
	isoRangePattern        = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*-\s*(\d{4}-\d{2}-\d{2})$`)
)

// ParseDateRange parses a date range string into inclusive ISO date bounds.
//
// Supported formats:
//   - "2024-06-01 - 2024-06-30" - Explicit ISO range
//   - "Mar 1-15" or "March 1-15" - Same month, different days
//   - "March 1 - April 15" - Different months
//   - "March" - Entire month
//
// For month-name forms the year is inferred: a month earlier than the
// current one is assumed to mean next year, and a cross-month range whose
// end month precedes its start month rolls the end into the next year.
func ParseDateRange(input string) (string, string, error) {
	return parseDateRangeAt(input, time.Now())
}

func parseDateRangeAt(input string, now time.Time) (string, string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", fmt.Errorf("date range cannot be empty")
	}

	if matches := isoRangePattern.FindStringSubmatch(input); matches != nil {
		from, err := time.Parse(isoDate, matches[1])
		if err != nil {
			return "", "", fmt.Errorf("invalid date: %s", matches[1])
		}
		to, err := time.Parse(isoDate, matches[2])
		if err != nil {
			return "", "", fmt.Errorf("invalid date: %s", matches[2])
		}
		if from.After(to) {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return matches[1], matches[2], nil
	}

	if matches := sameMonthRangePattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])
		day1, err := parseDay(matches[2])
		if err != nil {
			return "", "", err
		}
		day2, err := parseDay(matches[3])
		if err != nil {
			return "", "", err
		}
		if day1 > day2 {
			return "", "", fmt.Errorf("start date must be before end date")
		}

		year := yearForMonth(month, now)
		from := time.Date(year, month, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month, day2, 0, 0, 0, 0, time.UTC)
		return from.Format(isoDate), to.Format(isoDate), nil
	}

	if matches := crossMonthRangePattern.FindStringSubmatch(input); matches != nil {
		month1 := parseMonth(matches[1])
		day1, err := parseDay(matches[2])
		if err != nil {
			return "", "", err
		}
		month2 := parseMonth(matches[3])
		day2, err := parseDay(matches[4])
		if err != nil {
			return "", "", err
		}

		year1 := yearForMonth(month1, now)
		year2 := yearForMonth(month2, now)
		if month2 < month1 {
			year2 = year1 + 1
		}

		from := time.Date(year1, month1, day1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year2, month2, day2, 0, 0, 0, 0, time.UTC)
		if from.After(to) {
			return "", "", fmt.Errorf("start date must be before end date")
		}
		return from.Format(isoDate), to.Format(isoDate), nil
	}

	if matches := wholeMonthPattern.FindStringSubmatch(input); matches != nil {
		month := parseMonth(matches[1])
		year := yearForMonth(month, now)
		from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
		return from.Format(isoDate), to.Format(isoDate), nil
	}

	return "", "", fmt.Errorf("invalid date range format. Use '2024-06-01 - 2024-06-30', 'Mar 1-15', 'March 1 - April 15', or 'March'")
}

func parseMonth(name string) time.Month {
	months := map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if len(key) > 3 {
		key = key[:3]
	}
	return months[key]
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("invalid day: %s", s)
	}
	return day, nil
}

// yearForMonth returns the current year, or the next one if the month has
// already passed.
func yearForMonth(month time.Month, now time.Time) int {
	year := now.Year()
	if month < now.Month() {
		year++
	}
	return year
}
