package richtext

import (
	"strings"
	"testing"
)

func TestToPlainTextString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips tags and collapses whitespace",
			in:   "<p>Un  <strong>texte</strong></p>\n<p>riche</p>",
			want: "Un texte riche",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "tags only",
			in:   "<p></p><hr>",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPlainText(StringContent(tt.in))
			if got != tt.want {
				t.Errorf("ToPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToPlainTextStringHardCut(t *testing.T) {
	// The legacy string path cuts at exactly 160 characters, mid-word,
	// without an ellipsis.
	in := "<p>" + strings.Repeat("abcde ", 40) + "</p>"
	got := ToPlainText(StringContent(in))

	if len([]rune(got)) != 160 {
		t.Fatalf("len = %d, want 160", len([]rune(got)))
	}
	if strings.HasSuffix(got, "...") {
		t.Errorf("string path must not add an ellipsis: %q", got)
	}
}

func TestToPlainTextTree(t *testing.T) {
	tests := []struct {
		name string
		in   Content
		want string
	}{
		{
			name: "empty content",
			in:   Content{},
			want: "",
		},
		{
			name: "empty document",
			in:   TreeContent(NewDocument()),
			want: "",
		},
		{
			name: "paragraphs and headings separated",
			in: docOf(
				Node{Type: "heading", Tag: "h1", Children: []Node{NewTextNode("Titre", 0)}},
				NewParagraph(NewTextNode("Premier.", 0)),
				NewParagraph(NewTextNode("Second.", 0)),
			),
			want: "Titre Premier. Second.",
		},
		{
			name: "formatting is invisible",
			in: docOf(NewParagraph(
				NewTextNode("gras", FormatBold),
				NewTextNode(" et ", 0),
				NewTextNode("code", FormatCode),
			)),
			want: "gras et code",
		},
		{
			name: "link contributes its label only",
			in: docOf(NewParagraph(
				NewTextNode("voir ", 0),
				Node{Type: "link", Fields: &Fields{URL: "https://example.com"}, Children: []Node{NewTextNode("go", 0)}},
			)),
			want: "voir go",
		},
		{
			name: "upload contributes bracketed alt",
			in: docOf(
				NewParagraph(NewTextNode("avant", 0)),
				Node{Type: "upload", Value: map[string]interface{}{"alt": "une photo"}},
				NewParagraph(NewTextNode("après", 0)),
			),
			want: "avant [une photo] après",
		},
		{
			name: "upload without alt is silent",
			in: docOf(
				NewParagraph(NewTextNode("avant", 0)),
				Node{Type: "upload", Value: map[string]interface{}{"url": "/uploads/a.jpg"}},
				NewParagraph(NewTextNode("après", 0)),
			),
			want: "avant après",
		},
		{
			name: "rule separates neighbors",
			in: docOf(
				NewParagraph(NewTextNode("un", 0)),
				Node{Type: "horizontalrule"},
				NewParagraph(NewTextNode("deux", 0)),
			),
			want: "un deux",
		},
		{
			name: "lists and quotes flatten",
			in: docOf(
				Node{Type: "list", ListType: "bullet", Children: []Node{
					{Type: "listitem", Children: []Node{NewTextNode("a", 0)}},
					{Type: "listitem", Children: []Node{NewTextNode("b", 0)}},
				}},
				Node{Type: "quote", Children: []Node{NewTextNode("c", 0)}},
			),
			// Only paragraphs and headings contribute separators.
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPlainText(tt.in)
			if got != tt.want {
				t.Errorf("ToPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToPlainTextTreeWordSafeTruncation(t *testing.T) {
	in := docOf(NewParagraph(NewTextNode(strings.Repeat("mot ", 60), 0)))
	got := ToPlainText(in)

	if !strings.HasSuffix(got, "...") {
		t.Fatalf("tree path must end with ellipsis: %q", got)
	}
	if n := len([]rune(got)); n > 163 {
		t.Errorf("len = %d, want <= 163", n)
	}

	// The cut lands on a word boundary: stripping the ellipsis leaves no
	// partial word.
	body := strings.TrimSuffix(got, "...")
	for _, w := range strings.Fields(body) {
		if w != "mot" {
			t.Errorf("truncation split a word: %q", w)
		}
	}
}

func TestToPlainTextTreeNoSpaceWithinLimit(t *testing.T) {
	// A single unbroken run longer than the limit still truncates; with no
	// space to back up to, the cut is hard.
	in := docOf(NewParagraph(NewTextNode(strings.Repeat("a", 200), 0)))
	got := ToPlainText(in)

	want := strings.Repeat("a", 160) + "..."
	if got != want {
		t.Errorf("ToPlainText() = %d chars %q..., want hard cut at 160 + ellipsis", len(got), got[:10])
	}
}

func TestToPlainTextExactLimitNotTruncated(t *testing.T) {
	text := strings.Repeat("a", 160)
	got := ToPlainText(docOf(NewParagraph(NewTextNode(text, 0))))
	if got != text {
		t.Errorf("content at exactly the limit must pass through untouched")
	}
}

func TestToPlainTextMultibyteSafe(t *testing.T) {
	// Accented runes count as one character each and never split.
	text := strings.Repeat("été ", 60)
	got := ToPlainText(docOf(NewParagraph(NewTextNode(text, 0))))

	if n := len([]rune(got)); n > 163 {
		t.Errorf("len = %d runes, want <= 163", n)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("want ellipsis: %q", got)
	}
	for _, w := range strings.Fields(strings.TrimSuffix(got, "...")) {
		if w != "été" {
			t.Errorf("truncation split a multibyte word: %q", w)
		}
	}
}
