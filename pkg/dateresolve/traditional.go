package dateresolve

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var (
	// "5 Oct 2025", "21st March", "3 december 2026"
	dayMonthRE = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthPattern + `)\.?(?:\s+(\d{4}))?\b`)
	// "Oct 15, 2025", "October 15 2025", "Oct 15"
	monthDayRE = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	// "12/12/25", "05/10/2025", year-less "12/12" — read day-first.
	numericDateRE = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// resolveTraditional recognizes conventional written dates with an
// optional "at <time>" clause. A date lacking a year takes the nearest
// occurrence not earlier than now.
func (r *Resolver) resolveTraditional(text string, now time.Time) (time.Time, bool) {
	day, month, year, hasYear, ok := findWrittenDate(text)
	if !ok {
		return time.Time{}, false
	}

	hour, minute, _ := findClock(text)

	if !hasYear {
		year = now.Year()
	}
	t := time.Date(year, month, day, hour, minute, 0, 0, r.location)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	if !hasYear && t.Before(now) {
		t = t.AddDate(1, 0, 0)
	}
	return t, true
}

// findWrittenDate locates the first written-date token in text.
func findWrittenDate(text string) (day int, month time.Month, year int, hasYear, ok bool) {
	if m := dayMonthRE.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		month = monthFromName(m[2])
		year, hasYear = parseYear(m[3])
		return day, month, year, hasYear, day >= 1 && day <= 31
	}
	if m := monthDayRE.FindStringSubmatch(text); m != nil {
		month = monthFromName(m[1])
		day, _ = strconv.Atoi(m[2])
		year, hasYear = parseYear(m[3])
		return day, month, year, hasYear, day >= 1 && day <= 31
	}
	if m := numericDateRE.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		year, hasYear = parseYear(m[3])
		if mo < 1 || mo > 12 || day < 1 || day > 31 {
			return 0, 0, 0, false, false
		}
		return day, time.Month(mo), year, hasYear, true
	}
	return 0, 0, 0, false, false
}

func monthFromName(name string) time.Month {
	return monthsByPrefix[strings.ToLower(name)[:3]]
}

// parseYear normalizes an optional year capture; two-digit years are
// read as 20xx.
func parseYear(capture string) (int, bool) {
	if capture == "" {
		return 0, false
	}
	year, err := strconv.Atoi(capture)
	if err != nil {
		return 0, false
	}
	if year < 100 {
		year += 2000
	}
	return year, true
}
