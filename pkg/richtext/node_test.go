package richtext

import (
	"encoding/json"
	"testing"
)

func TestParseContent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantTree bool
	}{
		{
			name:     "document json",
			raw:      `{"root":{"type":"root","children":[{"type":"paragraph","children":[{"type":"text","text":"a"}]}]}}`,
			wantTree: true,
		},
		{
			name:     "document json with leading whitespace",
			raw:      "\n  " + `{"root":{"type":"root","children":[]}}`,
			wantTree: true,
		},
		{
			name:     "legacy html string",
			raw:      "<p>legacy</p>",
			wantTree: false,
		},
		{
			name:     "json that is not a document",
			raw:      `{"foo":"bar"}`,
			wantTree: false,
		},
		{
			name:     "broken document json falls back to string",
			raw:      `{"root":{"type":`,
			wantTree: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseContent(tt.raw)
			if (c.Doc != nil) != tt.wantTree {
				t.Errorf("tree = %v, want %v", c.Doc != nil, tt.wantTree)
			}
			if !tt.wantTree && c.HTML != tt.raw {
				t.Errorf("string content altered: %q", c.HTML)
			}
		})
	}

	if !ParseContent("   ").IsEmpty() {
		t.Error("whitespace-only content must be empty")
	}
}

func TestTextFormatDecoding(t *testing.T) {
	// Decoded JSON carries float64; builders set int; block nodes a string.
	raw := `{"type":"text","text":"a","format":3}`
	var n Node
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatal(err)
	}
	if n.TextFormat() != FormatBold|FormatItalic {
		t.Errorf("format = %d, want 3", n.TextFormat())
	}

	if NewTextNode("a", FormatCode).TextFormat() != FormatCode {
		t.Error("int format must decode")
	}

	block := Node{Type: "paragraph", Format: "center"}
	if block.TextFormat() != 0 {
		t.Error("string format must decode to 0 on the bitmask axis")
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want Alignment
	}{
		{"default", Node{Type: "paragraph"}, AlignLeft},
		{"textAlign wins", Node{Type: "paragraph", TextAlign: "center", Format: "right"}, AlignCenter},
		{"legacy string format", Node{Type: "paragraph", Format: "justify"}, AlignJustify},
		{"numeric format ignored", Node{Type: "text", Format: float64(9)}, AlignLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Alignment(); got != tt.want {
				t.Errorf("Alignment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUploadValueDecoding(t *testing.T) {
	raw := `{"type":"upload","relationTo":"media","value":{"id":42,"url":"/uploads/a.jpg","alt":"vue","legent":"cap"}}`
	var n Node
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatal(err)
	}

	v := n.UploadValue()
	if v == nil {
		t.Fatal("UploadValue() = nil")
	}
	if v.ID != "42" {
		t.Errorf("numeric id = %q, want \"42\"", v.ID)
	}
	if v.Caption() != "cap" {
		t.Errorf("Caption() = %q, want legent fallback", v.Caption())
	}
}

func TestUploadValueOnListitem(t *testing.T) {
	// listitem reuses the value slot for its ordinal; it must not decode as
	// a media reference.
	raw := `{"type":"listitem","value":1,"children":[]}`
	var n Node
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatal(err)
	}
	if n.UploadValue() != nil {
		t.Error("ordinal value must not decode as an upload")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := NewDocument(
		NewParagraph(NewTextNode("bonjour", FormatBold)),
		Node{Type: "horizontalrule", Version: 1},
	)

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	c := ParseContent(string(b))
	if c.Doc == nil {
		t.Fatal("serialized document must parse back as a tree")
	}
	if len(c.Doc.Root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(c.Doc.Root.Children))
	}
	if c.Doc.Root.Children[0].Children[0].TextFormat() != FormatBold {
		t.Error("format lost in round trip")
	}
}
