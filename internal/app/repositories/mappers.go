package repositories

import "strings"

// SplitAuthors converts the comma-separated author string used by edit forms
// into the ordered list persisted in the database. Tokens are trimmed and
// empty tokens are dropped.
func SplitAuthors(s string) []string {
	parts := strings.Split(s, ",")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		authors = append(authors, p)
	}
	return authors
}

// JoinAuthors converts a stored author list back into the single string shown
// in edit forms. Inverse of SplitAuthors for names that contain no commas.
func JoinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}

// SplitHighlights converts the newline-separated highlights textarea value
// into the list stored for a course. Blank lines are dropped.
func SplitHighlights(s string) []string {
	lines := strings.Split(s, "\n")
	highlights := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		highlights = append(highlights, l)
	}
	return highlights
}

// JoinHighlights is the edit-form inverse of SplitHighlights.
func JoinHighlights(highlights []string) string {
	return strings.Join(highlights, "\n")
}
