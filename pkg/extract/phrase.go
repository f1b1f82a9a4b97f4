package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultMaxPhraseTokens bounds the forward window taken after a trigger.
const DefaultMaxPhraseTokens = 12

var phraseTriggers = []*regexp.Regexp{
	// Deadline vocabulary.
	regexp.MustCompile(`(?i)\b(?:due|deadline|by|at|time|date|before)\b`),
	// Digits with date/time separators: 11:59, 12/12, 2025-10.
	regexp.MustCompile(`\b\d{1,4}[:/.\-]\d{1,2}\b`),
	// Weekday names.
	regexp.MustCompile(`(?i)\b(?:mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:rs(?:day)?)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?)\b`),
	// Month names.
	regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`),
	// Relative-time phrases.
	regexp.MustCompile(`(?i)\b(?:today|tomorrow|tonight|next|noon|midnight|immediately)\b`),
}

// DeadlinePhrase returns the substring of text most likely to carry a
// date/time reference: a bounded forward window starting at the first
// temporal trigger. maxTokens <= 0 selects DefaultMaxPhraseTokens.
// Returns ("", false) when no trigger is present.
func DeadlinePhrase(text string, maxTokens int) (string, bool) {
	if text == "" {
		return "", false
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxPhraseTokens
	}

	start := -1
	for _, re := range phraseTriggers {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if start < 0 || loc[0] < start {
			start = loc[0]
		}
	}
	if start < 0 {
		return "", false
	}

	window := cutSentence(text[start:])
	window = capTokens(window, maxTokens)
	window = strings.TrimRightFunc(window, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';'
	})
	if window == "" {
		return "", false
	}
	return window, true
}

// cutSentence truncates s at the end of the enclosing sentence. A period
// only terminates when followed by whitespace or end of input, so decimal
// and date separators survive ("12.10.2025 ...").
func cutSentence(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n', '!', '?':
			return s[:i]
		case '.':
			if i == len(s)-1 || s[i+1] == ' ' || s[i+1] == '\t' {
				return s[:i]
			}
		}
	}
	return s
}

// capTokens keeps at most n whitespace-separated tokens of s, preserving
// the original spacing between them.
func capTokens(s string, n int) string {
	inToken := false
	count := 0
	for i := 0; i < len(s); i++ {
		isSpace := s[i] == ' ' || s[i] == '\t'
		if !isSpace && !inToken {
			count++
			if count > n {
				return strings.TrimRight(s[:i], " \t")
			}
			inToken = true
		} else if isSpace {
			inToken = false
		}
	}
	return s
}
