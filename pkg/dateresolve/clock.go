package dateresolve

import (
	"regexp"
	"strconv"
)

var (
	clockColonRE = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	clockBareRE  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	noonRE       = regexp.MustCompile(`(?i)\b(?:12\s*noon|12noon|noon)\b`)
	midnightRE   = regexp.MustCompile(`(?i)\bmidnight\b`)
)

// findClock extracts an explicit time-of-day from text: "11:59pm",
// "14:00", "3pm", "noon", "midnight". Returns ok=false when no valid
// time token is present.
func findClock(text string) (hour, minute int, ok bool) {
	if m := clockColonRE.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if h, valid := applyMeridiem(hour, m[3]); valid && minute < 60 {
			return h, minute, true
		}
	}
	if m := clockBareRE.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if h, valid := applyMeridiem(hour, m[2]); valid {
			return h, 0, true
		}
	}
	if noonRE.MatchString(text) {
		return 12, 0, true
	}
	if midnightRE.MatchString(text) {
		return 0, 0, true
	}
	return 0, 0, false
}

// applyMeridiem converts a 12-hour clock value to 24-hour when an am/pm
// marker is present and validates the range.
func applyMeridiem(hour int, meridiem string) (int, bool) {
	switch meridiem {
	case "am", "AM", "Am", "aM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			return 0, true
		}
		return hour, true
	case "pm", "PM", "Pm", "pM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			return 12, true
		}
		return hour + 12, true
	default:
		return hour, hour < 24
	}
}
