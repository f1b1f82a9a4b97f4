package extract

import "sort"

type keywordMatch struct {
	at   int
	term string
}

// Keywords returns the canonical academic keywords present in text as
// whole words or phrases, ordered by first appearance. Case-insensitive;
// each term appears at most once.
func Keywords(text string) []string {
	if text == "" {
		return nil
	}

	var found []keywordMatch
	for i, re := range keywordPatterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		found = append(found, keywordMatch{at: loc[0], term: keywordVocab[i].Term})
	}
	if len(found) == 0 {
		return nil
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].at < found[j].at })

	terms := make([]string, len(found))
	for i, m := range found {
		terms[i] = m.term
	}
	return terms
}
