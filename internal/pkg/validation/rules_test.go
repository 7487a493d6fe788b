package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a.oalia@example.edu", true},
		{"A.Oalia@Example.EDU", true},
		{"visitor+tag@mail.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsValidEmail(c.email); got != c.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("expected short password to fail")
	}
	if !IsValidPassword("longenough") {
		t.Error("expected 10-char password to pass")
	}
}

func TestIsValidName(t *testing.T) {
	if IsValidName("A") {
		t.Error("expected 1-char name to fail")
	}
	if !IsValidName("Ada Oalia") {
		t.Error("expected normal name to pass")
	}
}
