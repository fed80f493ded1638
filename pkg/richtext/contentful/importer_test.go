package contentful

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"newsroom-be/pkg/richtext"
)

func textNode(value string, marks ...string) Node {
	n := Node{NodeType: "text", Value: value}
	for _, m := range marks {
		n.Marks = append(n.Marks, Mark{Type: m})
	}
	return n
}

func paragraphOf(children ...Node) Node {
	return Node{NodeType: "paragraph", Content: children}
}

func document(blocks ...Node) *Node {
	return &Node{NodeType: "document", Content: blocks}
}

func assetBlock(id, title string) Node {
	return Node{
		NodeType: "embedded-asset-block",
		Data: Data{Target: &Target{
			Sys:    Sys{ID: id, Type: "Link", LinkType: "Asset"},
			Fields: TargetFields{Title: title},
		}},
	}
}

func TestImportBlocks(t *testing.T) {
	imp := NewImporter()
	ctx := context.Background()

	tests := []struct {
		name  string
		in    Node
		check func(t *testing.T, n richtext.Node)
	}{
		{
			name: "paragraph with marks",
			in: paragraphOf(
				textNode("gras", "bold"),
				textNode(" et "),
				textNode("tout", "bold", "italic", "underline", "code", "strikethrough"),
			),
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "paragraph" || len(n.Children) != 3 {
					t.Fatalf("node = %+v", n)
				}
				if f := n.Children[0].TextFormat(); f != richtext.FormatBold {
					t.Errorf("bold = %d", f)
				}
				if f := n.Children[1].TextFormat(); f != 0 {
					t.Errorf("plain = %d", f)
				}
				want := richtext.FormatBold | richtext.FormatItalic | richtext.FormatUnderline |
					richtext.FormatCode | richtext.FormatStrikethrough
				if f := n.Children[2].TextFormat(); f != want {
					t.Errorf("all marks = %d, want %d", f, want)
				}
			},
		},
		{
			name: "heading levels map to tags",
			in:   Node{NodeType: "heading-4", Content: []Node{textNode("T")}},
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "heading" || n.Tag != "h4" {
					t.Errorf("node = %+v", n)
				}
			},
		},
		{
			name: "unordered list",
			in: Node{NodeType: "unordered-list", Content: []Node{
				{NodeType: "list-item", Content: []Node{paragraphOf(textNode("un"))}},
				{NodeType: "list-item", Content: []Node{paragraphOf(textNode("deux"))}},
				{NodeType: "text", Value: "stray"}, // non-items are skipped
			}},
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "list" || n.ListType != "bullet" || n.Tag != "ul" {
					t.Fatalf("node = %+v", n)
				}
				if len(n.Children) != 2 || n.Children[0].Type != "listitem" {
					t.Fatalf("items = %+v", n.Children)
				}
			},
		},
		{
			name: "ordered list",
			in: Node{NodeType: "ordered-list", Content: []Node{
				{NodeType: "list-item", Content: []Node{paragraphOf(textNode("un"))}},
			}},
			check: func(t *testing.T, n richtext.Node) {
				if n.ListType != "number" || n.Tag != "ol" || n.Start != 1 {
					t.Errorf("node = %+v", n)
				}
			},
		},
		{
			name: "blockquote",
			in:   Node{NodeType: "blockquote", Content: []Node{textNode("cit")}},
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "quote" {
					t.Errorf("type = %q", n.Type)
				}
			},
		},
		{
			name: "hr",
			in:   Node{NodeType: "hr"},
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "horizontalrule" {
					t.Errorf("type = %q", n.Type)
				}
			},
		},
		{
			name: "unknown block with content imports as paragraph",
			in:   Node{NodeType: "embedded-entry-block-v2", Content: []Node{textNode("x")}},
			check: func(t *testing.T, n richtext.Node) {
				if n.Type != "paragraph" || len(n.Children) != 1 {
					t.Errorf("node = %+v", n)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := imp.Import(ctx, document(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if len(doc.Root.Children) != 1 {
				t.Fatalf("children = %d, want 1", len(doc.Root.Children))
			}
			tt.check(t, doc.Root.Children[0])
		})
	}
}

func TestImportEmptyDocument(t *testing.T) {
	imp := NewImporter()

	for _, in := range []*Node{nil, document()} {
		doc, err := imp.Import(context.Background(), in)
		if err != nil {
			t.Fatal(err)
		}
		if doc == nil || doc.Root.Type != "root" || len(doc.Root.Children) != 0 {
			t.Errorf("empty import = %+v", doc)
		}
	}
}

func TestImportUnknownLeafBlockSkipped(t *testing.T) {
	imp := NewImporter()
	doc, err := imp.Import(context.Background(), document(
		paragraphOf(textNode("a")),
		Node{NodeType: "embedded-entry-block"},
		paragraphOf(textNode("b")),
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Root.Children) != 2 {
		t.Errorf("children = %d, want 2 (unknown leaf block dropped)", len(doc.Root.Children))
	}
}

func TestImportHyperlinkAsText(t *testing.T) {
	imp := NewImporter() // LinkAsText is the default
	doc, err := imp.Import(context.Background(), document(paragraphOf(
		textNode("voir "),
		Node{
			NodeType: "hyperlink",
			Data:     Data{URI: " https://example.com "},
			Content:  []Node{textNode("l'étude")},
		},
	)))
	if err != nil {
		t.Fatal(err)
	}

	p := doc.Root.Children[0]
	if len(p.Children) != 2 {
		t.Fatalf("children = %+v", p.Children)
	}
	link := p.Children[1]
	if link.Type != "text" || link.Text != "l'étude (https://example.com)" {
		t.Errorf("flattened link = %+v", link)
	}
}

func TestImportHyperlinkAsNode(t *testing.T) {
	imp := NewImporter(
		WithLinkMode(LinkAsNode),
		WithIDGenerator(func() string { return "fixed-id" }),
	)
	doc, err := imp.Import(context.Background(), document(paragraphOf(
		Node{
			NodeType: "hyperlink",
			Data:     Data{URI: "https://example.com"},
			Content:  []Node{textNode("l'étude", "bold")},
		},
	)))
	if err != nil {
		t.Fatal(err)
	}

	link := doc.Root.Children[0].Children[0]
	if link.Type != "link" || link.ID != "fixed-id" {
		t.Fatalf("link = %+v", link)
	}
	if link.Fields == nil || link.Fields.URL != "https://example.com" || link.Fields.LinkType != "custom" {
		t.Errorf("fields = %+v", link.Fields)
	}
	if len(link.Children) != 1 || link.Children[0].TextFormat() != richtext.FormatBold {
		t.Errorf("label keeps marks: %+v", link.Children)
	}
}

func TestImportEmbeddedAssetResolved(t *testing.T) {
	imp := NewImporter(WithAssetResolver(func(ctx context.Context, assetID string) (string, error) {
		if assetID != "cf-123" {
			t.Errorf("assetID = %q", assetID)
		}
		return "media-9", nil
	}))

	doc, err := imp.Import(context.Background(), document(assetBlock("cf-123", "Vue")))
	if err != nil {
		t.Fatal(err)
	}

	n := doc.Root.Children[0]
	if n.Type != "upload" || n.RelationTo != "media" {
		t.Fatalf("node = %+v", n)
	}
	v := n.UploadValue()
	if v == nil || v.ID != "media-9" {
		t.Errorf("value = %+v", v)
	}
}

func TestImportEmbeddedAssetFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		importer *Importer
		in       Node
		wantText string
	}{
		{
			name:     "no resolver",
			importer: NewImporter(),
			in:       assetBlock("cf-1", "Vue"),
			wantText: "[Vue]",
		},
		{
			name:     "missing asset id",
			importer: NewImporter(WithAssetResolver(func(ctx context.Context, id string) (string, error) { return "m", nil })),
			in:       Node{NodeType: "embedded-asset-block"},
			wantText: "[Image intégrée]",
		},
		{
			name: "asset unknown",
			importer: NewImporter(WithAssetResolver(func(ctx context.Context, id string) (string, error) {
				return "", nil
			})),
			in:       assetBlock("cf-1", "Vue"),
			wantText: "[Vue - Image non trouvée]",
		},
		{
			name: "resolver failure",
			importer: NewImporter(WithAssetResolver(func(ctx context.Context, id string) (string, error) {
				return "", errors.New("connection refused")
			})),
			in:       assetBlock("cf-1", "Vue"),
			wantText: "[Vue - Erreur de chargement]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.importer.Import(context.Background(), document(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			p := doc.Root.Children[0]
			if p.Type != "paragraph" || len(p.Children) != 1 {
				t.Fatalf("fallback = %+v", p)
			}
			leaf := p.Children[0]
			if leaf.Text != tt.wantText {
				t.Errorf("text = %q, want %q", leaf.Text, tt.wantText)
			}
			if leaf.TextFormat() != richtext.FormatItalic {
				t.Errorf("placeholder must be italic, format = %d", leaf.TextFormat())
			}
		})
	}
}

func TestImportPreservesOrderWithSlowResolver(t *testing.T) {
	// Early siblings resolve slowest. Output order must still match input.
	const n = 8
	blocks := make([]Node, n)
	for i := 0; i < n; i++ {
		blocks[i] = assetBlock("cf-"+strconv.Itoa(i), "Vue")
	}

	imp := NewImporter(WithAssetResolver(func(ctx context.Context, assetID string) (string, error) {
		var idx int
		fmt.Sscanf(assetID, "cf-%d", &idx)
		time.Sleep(time.Duration(n-idx) * time.Millisecond)
		return "media-" + strconv.Itoa(idx), nil
	}))

	doc, err := imp.Import(context.Background(), document(blocks...))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Root.Children) != n {
		t.Fatalf("children = %d, want %d", len(doc.Root.Children), n)
	}
	for i, c := range doc.Root.Children {
		v := c.UploadValue()
		if v == nil || v.ID != "media-"+strconv.Itoa(i) {
			t.Errorf("position %d holds %+v", i, v)
		}
	}
}

func TestImportResolverErrorDoesNotFailImport(t *testing.T) {
	imp := NewImporter(
		WithConcurrency(2),
		WithAssetResolver(func(ctx context.Context, id string) (string, error) {
			if id == "cf-bad" {
				return "", errors.New("boom")
			}
			return "media-1", nil
		}),
	)

	doc, err := imp.Import(context.Background(), document(
		assetBlock("cf-ok", "A"),
		assetBlock("cf-bad", "B"),
		paragraphOf(textNode("texte")),
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(doc.Root.Children))
	}
	if doc.Root.Children[0].Type != "upload" {
		t.Errorf("first = %+v", doc.Root.Children[0])
	}
	if doc.Root.Children[1].Type != "paragraph" {
		t.Errorf("second must degrade to placeholder paragraph: %+v", doc.Root.Children[1])
	}
}

func TestImportCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	imp := NewImporter(WithAssetResolver(func(ctx context.Context, id string) (string, error) {
		return "", ctx.Err()
	}))

	_, err := imp.Import(ctx, document(assetBlock("cf-1", "Vue")))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestImportJSON(t *testing.T) {
	raw := []byte(`{
		"nodeType": "document",
		"content": [
			{"nodeType": "heading-2", "content": [{"nodeType": "text", "value": "Titre"}]},
			{"nodeType": "paragraph", "content": [
				{"nodeType": "text", "value": "corps ", "marks": []},
				{"nodeType": "text", "value": "fort", "marks": [{"type": "bold"}]}
			]}
		]
	}`)

	doc, err := NewImporter().ImportJSON(context.Background(), raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(doc.Root.Children))
	}
	if doc.Root.Children[0].Tag != "h2" {
		t.Errorf("heading = %+v", doc.Root.Children[0])
	}
	if doc.Root.Children[1].Children[1].TextFormat() != richtext.FormatBold {
		t.Errorf("bold mark lost")
	}

	if _, err := NewImporter().ImportJSON(context.Background(), []byte("not json")); err == nil {
		t.Error("invalid payload must error")
	}
}
