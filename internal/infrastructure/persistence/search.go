package persistence

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a search term in wildcards for an ILIKE match,
// escaping the LIKE metacharacters so the term matches as a literal
// substring rather than as a pattern.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
