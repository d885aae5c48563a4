package finder

import (
	"regexp"
	"strings"
)

// stopWords are query scaffolding, time words and short function words
// that never act as filename keywords.
var stopWords = map[string]struct{}{
	"find": {}, "get": {}, "give": {}, "send": {}, "show": {}, "that": {},
	"the": {}, "file": {}, "document": {}, "i": {}, "was": {}, "reading": {},
	"working": {}, "on": {}, "opened": {}, "accessed": {}, "yesterday": {},
	"today": {}, "morning": {}, "afternoon": {}, "evening": {}, "night": {},
	"last": {}, "this": {}, "hours": {}, "ago": {}, "minutes": {},
	"recent": {}, "just": {}, "pdf": {}, "excel": {}, "word": {},
	"image": {}, "video": {}, "audio": {}, "me": {}, "my": {}, "a": {},
	"an": {}, "at": {}, "in": {},
}

var clockTokenPattern = regexp.MustCompile(`\d{1,2}[:.]\d{2}`)

// ExtractKeyword derives a single filename-search token from the query,
// or "" when nothing usable remains after stop-word removal. Clock-time
// tokens like "17.43" are stripped first so they are never mistaken for
// keywords. Of the surviving tokens the longest wins, first occurrence
// breaking ties.
func ExtractKeyword(text string) string {
	query := strings.ToLower(text)
	query = clockTokenPattern.ReplaceAllString(query, "")

	var keyword string
	for _, word := range strings.Fields(query) {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		if len(word) > len(keyword) {
			keyword = word
		}
	}

	return keyword
}
