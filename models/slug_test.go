package models

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Machine Learning", "machine-learning"},
		{"  Web   Development  ", "web-development"},
		{"C++ & Go!", "c-go"},
		{"snake_case_name", "snake-case-name"},
		{"Already-Slugged", "already-slugged"},
		{"123 Numbers", "123-numbers"},
		{"Café Menu", "cafe-menu"},
		{"Résumé Builder", "resume-builder"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
