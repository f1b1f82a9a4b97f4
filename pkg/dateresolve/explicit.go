package dateresolve

import (
	"regexp"
	"strconv"
	"time"
)

// Machine-formatted date, optional time-of-day and zone suffix:
// 2025-10-05, 2025-10-05 14:00, 2025-11-15T14:00:30Z, 2025-10-05T09:00+02:00.
var explicitRE = regexp.MustCompile(
	`\b(\d{4})-(\d{2})-(\d{2})(?:[T ](\d{2}):(\d{2})(?::(\d{2}))?(Z|[+-]\d{2}:\d{2})?)?\b`)

// resolveExplicit recognizes unambiguous machine-formatted dates anywhere
// in the input. Explicit formats carry their own year (and optionally
// zone), so no future-bias adjustment applies.
func (r *Resolver) resolveExplicit(text string) (time.Time, bool) {
	m := explicitRE.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	hour, minute, sec := 0, 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
	}

	loc := r.location
	switch {
	case m[7] == "Z":
		loc = time.UTC
	case m[7] != "":
		offset, ok := parseZoneOffset(m[7])
		if !ok {
			return time.Time{}, false
		}
		loc = time.FixedZone(m[7], offset)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc)
	// Reject values time.Date would silently normalize (2025-13-40).
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, false
	}
	return t, true
}

// parseZoneOffset converts "+HH:MM" / "-HH:MM" to seconds east of UTC.
func parseZoneOffset(s string) (int, bool) {
	if len(s) != 6 {
		return 0, false
	}
	hours, err := strconv.Atoi(s[1:3])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(s[4:6])
	if err != nil || hours > 14 || minutes > 59 {
		return 0, false
	}
	offset := hours*3600 + minutes*60
	if s[0] == '-' {
		offset = -offset
	}
	return offset, true
}
