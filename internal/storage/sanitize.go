package storage

import "strings"

// likeEscaper escapes SQLite LIKE wildcards. Queries using it must declare
// ESCAPE '\'.
var likeEscaper = strings.NewReplacer(
	"\\", "\\\\", // Escape backslash first
	"%", "\\%",
	"_", "\\_",
)

// sanitizeSearchTerm escapes LIKE special characters so user text matches
// literally.
func sanitizeSearchTerm(term string) string {
	return likeEscaper.Replace(term)
}

// likePattern wraps a sanitized term for a contains match.
func likePattern(term string) string {
	return "%" + sanitizeSearchTerm(strings.TrimSpace(term)) + "%"
}
