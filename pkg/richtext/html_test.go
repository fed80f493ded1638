package richtext

import (
	"strings"
	"testing"
)

func docOf(children ...Node) Content {
	return TreeContent(NewDocument(children...))
}

func TestRenderTextFormats(t *testing.T) {
	// Every bitmask combination nests the same fixed wrapper order:
	// bold innermost, then italic, strikethrough, underline, code.
	type wrapper struct {
		bit  int
		open string
		clos string
	}
	wrappers := []wrapper{
		{FormatBold, "<strong>", "</strong>"},
		{FormatItalic, "<em>", "</em>"},
		{FormatStrikethrough, "<s>", "</s>"},
		{FormatUnderline, "<u>", "</u>"},
		{FormatCode, "<code>", "</code>"},
	}

	for format := 0; format < 32; format++ {
		want := "x"
		for _, w := range wrappers {
			if format&w.bit != 0 {
				want = w.open + want + w.clos
			}
		}
		want = `<p class="text-left">` + want + "</p>"

		got := RenderHTML(docOf(NewParagraph(NewTextNode("x", format))))
		if got != want {
			t.Errorf("format %d = %q, want %q", format, got, want)
		}
	}
}

func TestRenderNodes(t *testing.T) {
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
			name: "empty paragraph keeps vertical space",
			in:   docOf(Node{Type: "paragraph"}),
			want: `<p class="text-left">&nbsp;</p>`,
		},
		{
			name: "paragraph alignment from textAlign",
			in:   docOf(Node{Type: "paragraph", TextAlign: "center", Children: []Node{NewTextNode("a", 0)}}),
			want: `<p class="text-center">a</p>`,
		},
		{
			name: "legacy alignment inside string format",
			in:   docOf(Node{Type: "paragraph", Format: "right", Children: []Node{NewTextNode("a", 0)}}),
			want: `<p class="text-right">a</p>`,
		},
		{
			name: "heading with tag",
			in:   docOf(Node{Type: "heading", Tag: "h3", Children: []Node{NewTextNode("Titre", 0)}}),
			want: `<h3 class="text-left">Titre</h3>`,
		},
		{
			name: "heading without tag defaults to h2",
			in:   docOf(Node{Type: "heading", Children: []Node{NewTextNode("Titre", 0)}}),
			want: `<h2 class="text-left">Titre</h2>`,
		},
		{
			name: "bullet list",
			in: docOf(Node{Type: "list", ListType: "bullet", Children: []Node{
				{Type: "listitem", Children: []Node{NewTextNode("un", 0)}},
				{Type: "listitem", Children: []Node{NewTextNode("deux", 0)}},
			}}),
			want: `<ul class="text-left"><li>un</li><li>deux</li></ul>`,
		},
		{
			name: "numbered list",
			in: docOf(Node{Type: "list", ListType: "number", Children: []Node{
				{Type: "listitem", Children: []Node{NewTextNode("un", 0)}},
			}}),
			want: `<ol class="text-left"><li>un</li></ol>`,
		},
		{
			name: "quote",
			in:   docOf(Node{Type: "quote", Children: []Node{NewTextNode("cit", 0)}}),
			want: `<blockquote class="text-left">cit</blockquote>`,
		},
		{
			name: "absolute link opens a new tab",
			in: docOf(NewParagraph(Node{
				Type:     "link",
				Fields:   &Fields{URL: "https://example.com"},
				Children: []Node{NewTextNode("ici", 0)},
			})),
			want: `<p class="text-left"><a href="https://example.com" class="underline" target="_blank" rel="noopener noreferrer">ici</a></p>`,
		},
		{
			name: "relative link stays in tab",
			in: docOf(NewParagraph(Node{
				Type:     "link",
				Fields:   &Fields{URL: "/articles/un-slug"},
				Children: []Node{NewTextNode("ici", 0)},
			})),
			want: `<p class="text-left"><a href="/articles/un-slug" class="underline">ici</a></p>`,
		},
		{
			name: "link without url falls back to hash",
			in: docOf(NewParagraph(Node{
				Type:     "link",
				Children: []Node{NewTextNode("ici", 0)},
			})),
			want: `<p class="text-left"><a href="#" class="underline">ici</a></p>`,
		},
		{
			name: "upload with legend caption",
			in: docOf(Node{Type: "upload", Value: map[string]interface{}{
				"url": "/uploads/a.jpg", "alt": "vue", "legend": "La vue",
			}}),
			want: `<figure class="upload"><img src="/uploads/a.jpg" alt="vue"><figcaption>La vue</figcaption></figure>`,
		},
		{
			name: "upload with misspelled legent caption",
			in: docOf(Node{Type: "upload", Value: map[string]interface{}{
				"url": "/uploads/a.jpg", "alt": "vue", "legent": "La vue",
			}}),
			want: `<figure class="upload"><img src="/uploads/a.jpg" alt="vue"><figcaption>La vue</figcaption></figure>`,
		},
		{
			name: "upload without url renders nothing",
			in:   docOf(Node{Type: "upload", Value: map[string]interface{}{"id": "42"}}),
			want: "",
		},
		{
			name: "horizontal rule",
			in:   docOf(Node{Type: "horizontalrule"}),
			want: "<hr>",
		},
		{
			name: "code block",
			in:   docOf(Node{Type: "code", Children: []Node{NewTextNode("x := 1", 0)}}),
			want: "<pre><code>x := 1</code></pre>",
		},
		{
			name: "youtube video block",
			in: docOf(Node{Type: "block", Fields: &Fields{
				BlockType: "video", VideoType: "youtube", YoutubeID: "dQw4w9WgXcQ", Title: "Clip",
			}}),
			want: `<figure class="video-block"><h3>Clip</h3><iframe src="https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ" title="Clip" allowfullscreen></iframe></figure>`,
		},
		{
			name: "vimeo video block",
			in: docOf(Node{Type: "block", Fields: &Fields{
				BlockType: "video", VideoType: "vimeo", VimeoID: "123456",
			}}),
			want: `<figure class="video-block"><iframe src="https://player.vimeo.com/video/123456" title="" allowfullscreen></iframe></figure>`,
		},
		{
			name: "unsupported block gets a visible placeholder",
			in:   docOf(Node{Type: "block", Fields: &Fields{BlockType: "poll"}}),
			want: `<div class="unsupported-block">Block non supporté: poll</div>`,
		},
		{
			name: "unknown node type recurses transparently",
			in:   docOf(Node{Type: "collapsible", Children: []Node{NewParagraph(NewTextNode("a", 0))}}),
			want: `<div><p class="text-left">a</p></div>`,
		},
		{
			name: "unknown leaf renders nothing",
			in:   docOf(Node{Type: "mention"}),
			want: "",
		},
		{
			name: "text leaves are escaped",
			in:   docOf(NewParagraph(NewTextNode(`<script>alert("x")</script>`, FormatBold))),
			want: `<p class="text-left"><strong>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</strong></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderHTML(tt.in)
			if got != tt.want {
				t.Errorf("RenderHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderLegacyStringSanitized(t *testing.T) {
	in := StringContent(`<p>ok</p><script>alert("x")</script>`)
	got := RenderHTML(in)
	if !strings.Contains(got, "<p>ok</p>") {
		t.Errorf("kept markup lost: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script survived sanitization: %q", got)
	}
}

func TestRenderSiblingsConcatenate(t *testing.T) {
	in := docOf(
		Node{Type: "heading", Tag: "h1", Children: []Node{NewTextNode("T", 0)}},
		NewParagraph(NewTextNode("corps", 0)),
		Node{Type: "horizontalrule"},
	)
	want := `<h1 class="text-left">T</h1><p class="text-left">corps</p><hr>`
	if got := RenderHTML(in); got != want {
		t.Errorf("RenderHTML() = %q, want %q", got, want)
	}
}
