package repositories

import (
	"reflect"
	"testing"
)

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "A. Turing", []string{"A. Turing"}},
		{"two", "A. Turing, J. von Neumann", []string{"A. Turing", "J. von Neumann"}},
		{"untrimmed", "  A. Turing ,J. von Neumann  ", []string{"A. Turing", "J. von Neumann"}},
		{"empty tokens dropped", "A. Turing,,, B. Liskov,", []string{"A. Turing", "B. Liskov"}},
		{"empty string", "", []string{}},
		{"only commas", ",,,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAuthors(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitAuthors(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAuthorsRoundTrip(t *testing.T) {
	// split(join(list)) == list for non-empty names without commas
	lists := [][]string{
		{"A. Turing"},
		{"A. Turing", "J. von Neumann", "B. Liskov"},
		{"Grace Hopper", "Edsger W. Dijkstra"},
	}
	for _, list := range lists {
		got := SplitAuthors(JoinAuthors(list))
		if !reflect.DeepEqual(got, list) {
			t.Errorf("round trip of %v = %v", list, got)
		}
	}
}

func TestHighlightsRoundTrip(t *testing.T) {
	list := []string{"Weekly labs", "Final project", "Guest lectures"}
	got := SplitHighlights(JoinHighlights(list))
	if !reflect.DeepEqual(got, list) {
		t.Errorf("round trip of %v = %v", list, got)
	}

	// Blank lines are dropped
	got = SplitHighlights("Weekly labs\n\n  \nFinal project\n")
	want := []string{"Weekly labs", "Final project"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitHighlights with blanks = %v, want %v", got, want)
	}
}
