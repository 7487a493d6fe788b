package services

import (
	"testing"

	"github.com/oalia/scholarsite/internal/app/models"
)

func TestPublicationSearchMatching(t *testing.T) {
	pub := &models.Publication{
		Title:   "Adaptive Query Optimization",
		Authors: []string{"A. Oalia", "B. Chen"},
		Venue:   "SIGMOD",
		Date:    "2025",
	}

	cases := []struct {
		name  string
		query string
		year  string
		want  bool
	}{
		{"title substring", "query optim", "", true},
		{"title case-insensitive", "ADAPTIVE", "", true},
		{"author substring", "chen", "", true},
		{"venue substring", "sigmod", "", true},
		{"no match", "neural", "", false},
		{"year match", "", "2025", true},
		{"year mismatch", "", "2024", false},
		{"query and year both match", "oalia", "2025", true},
		{"query matches but year does not", "oalia", "2024", false},
		{"empty query and year", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := matchesPublication(pub, c.query, c.year); got != c.want {
				t.Errorf("matchesPublication(q=%q, year=%q) = %v, want %v", c.query, c.year, got, c.want)
			}
		})
	}
}

func TestResearchSearchMatchesCategory(t *testing.T) {
	project := &models.ResearchProject{
		Title:       "Consensus at Scale",
		Category:    "Distributed Systems",
		Description: "Replication protocols under partial synchrony.",
	}

	if !matchesProject(project, "distributed") {
		t.Error("expected category substring to match")
	}
	if !matchesProject(project, "consensus") {
		t.Error("expected title substring to match")
	}
	if !matchesProject(project, "replication") {
		t.Error("expected description substring to match")
	}
	if matchesProject(project, "quantum") {
		t.Error("expected unrelated query not to match")
	}
}
