package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"accents", "Élection présidentielle à Paris", "election-presidentielle-a-paris"},
		{"punctuation", "Budget 2026 : les chiffres clés !", "budget-2026-les-chiffres-cles"},
		{"collapsed separators", "a  --  b", "a-b"},
		{"leading and trailing", "  «Citation»  ", "citation"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}
