package naver

import (
	"net/url"
	"strings"
)

// MapSearchURL opens Naver Map searching for the given terms.
func MapSearchURL(terms ...string) string {
	return "https://map.naver.com/p/search/" + url.PathEscape(joinTerms(terms))
}

// WebSearchURL opens a Naver web search for query.
func WebSearchURL(query string) string {
	return "https://search.naver.com/search.naver?" + url.Values{"query": {query}}.Encode()
}

func joinTerms(terms []string) string {
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
