package dateresolve

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRE  = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(hour|hours|day|days|week|weeks|month|months)\b`)
	tomorrowRE    = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayRE       = regexp.MustCompile(`(?i)\b(?:today|tonight)\b`)
	nextWeekdayRE = regexp.MustCompile(`(?i)\bnext\s+(` + weekdayPattern + `)\b`)
	weekdayRE     = regexp.MustCompile(`(?i)\b(` + weekdayPattern + `)\b`)
	immediateRE   = regexp.MustCompile(`(?i)\b(?:immediately|right away|asap)\b`)
)

// Full names and the common three-letter abbreviations ("fri", "thurs").
const weekdayPattern = `mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:rs(?:day)?)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?`

var weekdaysByPrefix = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

func weekdayFromName(name string) time.Weekday {
	return weekdaysByPrefix[strings.ToLower(name)[:3]]
}

// resolveNatural recognizes relative and colloquial expressions:
// "tomorrow", "in 3 days", "next monday", bare weekday names, "noon",
// "11:59pm", "immediately". A bare weekday means the nearest occurrence
// not earlier than now, never a past one.
func (r *Resolver) resolveNatural(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	hour, minute, hasClock := findClock(lower)

	if m := inDurationRE.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		unit := m[2]
		if strings.HasPrefix(unit, "hour") {
			return now.Add(time.Duration(amount) * time.Hour), true
		}
		var day time.Time
		switch {
		case strings.HasPrefix(unit, "day"):
			day = now.AddDate(0, 0, amount)
		case strings.HasPrefix(unit, "week"):
			day = now.AddDate(0, 0, amount*7)
		default:
			day = now.AddDate(0, amount, 0)
		}
		return r.atClock(day, hour, minute), true
	}

	if tomorrowRE.MatchString(lower) {
		return r.atClock(now.AddDate(0, 0, 1), hour, minute), true
	}

	if todayRE.MatchString(lower) {
		return r.atClock(now, hour, minute), true
	}

	if m := nextWeekdayRE.FindStringSubmatch(lower); m != nil {
		target := weekdayFromName(m[1])
		daysUntil := int(target - now.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return r.atClock(now.AddDate(0, 0, daysUntil), hour, minute), true
	}

	if m := weekdayRE.FindStringSubmatch(lower); m != nil {
		target := weekdayFromName(m[1])
		daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
		t := r.atClock(now.AddDate(0, 0, daysUntil), hour, minute)
		if t.Before(now) {
			t = t.AddDate(0, 0, 7)
		}
		return t, true
	}

	if immediateRE.MatchString(lower) {
		return now, true
	}

	// Time-of-day alone: today at that time, or tomorrow once it has passed.
	if hasClock {
		t := r.atClock(now, hour, minute)
		if t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, true
	}

	return time.Time{}, false
}

// atClock pins day to the given time-of-day in the resolver's location.
// Hour and minute default to midnight when the input carried no time.
func (r *Resolver) atClock(day time.Time, hour, minute int) time.Time {
	day = day.In(r.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location)
}
