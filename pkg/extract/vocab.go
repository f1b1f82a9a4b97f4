// Package extract finds academic metadata — course codes, keywords and
// deadline phrases — in free-form text. All vocabularies are loaded once
// into read-only package state; extraction itself is pure and stateless.
package extract

import "regexp"

// Keyword categories exposed through KeywordCategory.
const (
	CategoryAssessment = "assessment"
	CategoryWork       = "work"
	CategorySubmission = "submission"
	CategoryEvent      = "event"
	CategoryGrading    = "grading"
	CategoryGeneral    = "general"
)

// keywordVocab lists every recognized academic term with its category.
// Order here only groups terms for readability — output order always
// follows first appearance in the input text.
var keywordVocab = []struct {
	Term     string
	Category string
}{
	{"exam", CategoryAssessment},
	{"test", CategoryAssessment},
	{"quiz", CategoryAssessment},
	{"midterm", CategoryAssessment},
	{"final", CategoryAssessment},
	{"assessment", CategoryAssessment},

	{"assignment", CategoryWork},
	{"homework", CategoryWork},
	{"project", CategoryWork},
	{"lab", CategoryWork},
	{"practical", CategoryWork},
	{"tutorial", CategoryWork},

	{"submission", CategorySubmission},
	{"submit", CategorySubmission},
	{"due", CategorySubmission},
	{"deadline", CategorySubmission},
	{"hand in", CategorySubmission},
	{"turn in", CategorySubmission},

	{"meeting", CategoryEvent},
	{"presentation", CategoryEvent},
	{"seminar", CategoryEvent},
	{"lecture", CategoryEvent},
	{"class", CategoryEvent},
	{"session", CategoryEvent},

	{"grade", CategoryGrading},
	{"marked", CategoryGrading},
	{"graded", CategoryGrading},
	{"result", CategoryGrading},
	{"score", CategoryGrading},

	{"course", CategoryGeneral},
	{"subject", CategoryGeneral},
	{"module", CategoryGeneral},
}

// keywordPatterns holds one whole-word pattern per vocabulary term,
// compiled once at startup. Go regexps are RE2, so matching cost stays
// linear in the input length.
var keywordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(keywordVocab))
	for i, kw := range keywordVocab {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw.Term) + `\b`)
	}
	return patterns
}()

var keywordCategories = func() map[string]string {
	m := make(map[string]string, len(keywordVocab))
	for _, kw := range keywordVocab {
		m[kw.Term] = kw.Category
	}
	return m
}()

// courseAbbreviations is the fixed whitelist of bare course acronyms.
var courseAbbreviations = map[string]bool{
	"DSA": true, "OS": true, "HCI": true, "AI": true, "ML": true,
	"DB": true, "DM": true, "SE": true, "CN": true, "TOC": true,
	"DBMS": true, "OOP": true, "DS": true, "NLP": true, "CV": true,
	"RL": true, "GIS": true, "CAD": true, "IOT": true,
}

// spacedStopWords are short function words that routinely precede a
// number in prose ("due 2099", "on 15/10"). A number after one of these
// is a date or a quantity, never a course.
var spacedStopWords = map[string]bool{
	"AN": true, "AS": true, "AT": true, "BY": true, "IN": true,
	"OF": true, "ON": true, "OR": true, "TO": true,
	"ALL": true, "AND": true, "ANY": true, "ARE": true, "BUT": true,
	"DUE": true, "FOR": true, "HAS": true, "NOT": true, "OUR": true,
	"PER": true, "THE": true, "VIA": true, "WAS": true, "YOU": true,
}

// excludedPrefixes are tokens that look like course codes but are
// calendar or timezone abbreviations (e.g. "SEP 16" is a date, not a course).
var excludedPrefixes = map[string]bool{
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "MAY": true,
	"JUN": true, "JUL": true, "AUG": true, "SEP": true, "OCT": true,
	"NOV": true, "DEC": true,
	"MON": true, "TUE": true, "WED": true, "THU": true, "FRI": true,
	"SAT": true, "SUN": true,
	"AM": true, "PM": true, "GMT": true, "UTC": true,
}

// KeywordCategory returns the category for a canonical keyword, or ""
// when the term is not part of the vocabulary.
func KeywordCategory(term string) string {
	return keywordCategories[term]
}
