package statement

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// nativeLayouts are tried in order before the day-first fallback.
// US month-first forms win here, so "05/01/2024" is May 1.
var nativeLayouts = []string{
	isoDate,
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/1/2",
	"2006.1.2",
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"02-Jan-06",
	"Mon Jan 2 2006",
}

var dateSeparators = regexp.MustCompile(`[-/.]`)

// NormalizeDate returns s as YYYY-MM-DD when it can be read as a date, and s
// unchanged otherwise.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if t, ok := parseNative(s); ok {
		return t.UTC().Format(isoDate)
	}
	if t, ok := parseDayFirst(s); ok {
		return t.Format(isoDate)
	}
	return s
}

func parseNative(s string) (time.Time, bool) {
	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseDayFirst reads DD/MM/YYYY with any of - / . as separator.
// Two-digit years below 50 are 20xx, the rest 19xx. A day past the end of
// the month rolls into the next month.
func parseDayFirst(s string) (time.Time, bool) {
	parts := dateSeparators.Split(s, -1)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]

	if year >= 0 && year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
