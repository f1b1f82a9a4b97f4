package extract

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// Compact form: CSC101, MATH2010.
	compactCourseRE = regexp.MustCompile(`\b[A-Z]{2,4}[0-9]{2,4}\b`)
	// Spaced form: CE 382, CS 101.
	spacedCourseRE = regexp.MustCompile(`\b[A-Z]{2,3}[ \t][0-9]{2,4}\b`)
	// Candidate bare acronyms, checked against the whitelist.
	acronymRE = regexp.MustCompile(`\b[A-Z]{2,4}\b`)
)

type courseMatch struct {
	at   int
	code string
}

// CourseCodes returns every course identifier found in text, ordered by
// first occurrence and deduplicated by exact string. Matching runs on the
// uppercased text so informal lowercase mentions ("csc101") still hit.
func CourseCodes(text string) []string {
	if text == "" {
		return nil
	}
	upper := strings.ToUpper(text)

	var found []courseMatch
	for _, loc := range compactCourseRE.FindAllStringIndex(upper, -1) {
		code := upper[loc[0]:loc[1]]
		if excludedPrefixes[letterPrefix(code)] {
			continue
		}
		found = append(found, courseMatch{at: loc[0], code: code})
	}
	for _, loc := range spacedCourseRE.FindAllStringIndex(upper, -1) {
		code := upper[loc[0]:loc[1]]
		prefix := letterPrefix(code)
		if excludedPrefixes[prefix] || spacedStopWords[prefix] {
			continue
		}
		if spacedNumberIsDate(upper, loc[1], strings.TrimLeft(code[len(prefix):], " \t")) {
			continue
		}
		// Canonical separator is a single space.
		found = append(found, courseMatch{at: loc[0], code: strings.Join(strings.Fields(code), " ")})
	}
	for _, loc := range acronymRE.FindAllStringIndex(upper, -1) {
		word := upper[loc[0]:loc[1]]
		if courseAbbreviations[word] {
			found = append(found, courseMatch{at: loc[0], code: word})
		}
	}

	if len(found) == 0 {
		return nil
	}

	// Merge the three passes by position; the append order above keeps
	// pattern priority stable for matches at the same offset.
	sort.SliceStable(found, func(i, j int) bool { return found[i].at < found[j].at })

	seen := make(map[string]bool, len(found))
	codes := make([]string, 0, len(found))
	for _, m := range found {
		if seen[m.code] {
			continue
		}
		seen[m.code] = true
		codes = append(codes, m.code)
	}
	return codes
}

// spacedNumberIsDate reports whether the digit run of a spaced candidate
// is really part of a date: continued by a date or time separator
// ("CS 15/10/2025") or a bare four-digit year.
func spacedNumberIsDate(text string, end int, digits string) bool {
	if end+1 < len(text) && text[end+1] >= '0' && text[end+1] <= '9' {
		switch text[end] {
		case '/', '-', '.', ':':
			return true
		}
	}
	if len(digits) == 4 && (strings.HasPrefix(digits, "19") || strings.HasPrefix(digits, "20")) {
		return true
	}
	return false
}

// letterPrefix returns the leading letters of a course-code candidate.
func letterPrefix(code string) string {
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return code[:i]
		}
	}
	return code
}
