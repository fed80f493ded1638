package richtext

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"
)

// seqIDs returns a deterministic id generator for asserting synthesized nodes.
func seqIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestFixMalformedLinks_Splice(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`Selon l'étude. (1) Source : "Une étude" (https://example.com/etude) Fin.`, 0),
	))

	got, changed := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	if !changed {
		t.Fatal("expected a rewrite")
	}

	p := got.Root.Children[0]
	if len(p.Children) != 3 {
		t.Fatalf("children = %d, want 3 (before, link, after)", len(p.Children))
	}

	before := p.Children[0]
	if before.Type != "text" || before.Text != "Selon l'étude. " {
		t.Errorf("before = %q", before.Text)
	}

	link := p.Children[1]
	if link.Type != "link" {
		t.Fatalf("middle node type = %q, want link", link.Type)
	}
	if link.ID != "id-1" {
		t.Errorf("link id = %q, want injected id-1", link.ID)
	}
	if link.Fields == nil || link.Fields.URL != "https://example.com/etude" || link.Fields.LinkType != "custom" {
		t.Errorf("link fields = %+v", link.Fields)
	}
	if len(link.Children) != 1 || link.Children[0].Text != "Une étude" {
		t.Errorf("link label = %+v", link.Children)
	}

	after := p.Children[2]
	if after.Text != " Fin." {
		t.Errorf("after = %q", after.Text)
	}
}

func TestFixMalformedLinks_CommuniqueInfix(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`(2) Source : Communiqué : "Le communiqué" (https://example.org/cp)`, 0),
	))

	got, changed := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	if !changed {
		t.Fatal("expected a rewrite")
	}
	p := got.Root.Children[0]
	if len(p.Children) != 1 || p.Children[0].Type != "link" {
		t.Fatalf("children = %+v, want a single link", p.Children)
	}
	if p.Children[0].Children[0].Text != "Le communiqué" {
		t.Errorf("label = %q", p.Children[0].Children[0].Text)
	}
}

func TestFixMalformedLinks_FullSpanDropsWhitespaceTail(t *testing.T) {
	// A match covering the whole leaf (modulo trailing whitespace) leaves
	// just the link node; the whitespace tail is dropped.
	doc := NewDocument(NewParagraph(
		NewTextNode(`(1) Source : "Seul" (https://example.com)   `, 0),
	))

	got, _ := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	p := got.Root.Children[0]
	if len(p.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(p.Children))
	}
	if p.Children[0].Type != "link" {
		t.Errorf("type = %q, want link", p.Children[0].Type)
	}
}

func TestFixMalformedLinks_MultipleMatchesInOneLeaf(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`(1) Source : "A" (https://a.example) et (2) Source : "B" (https://b.example)`, 0),
	))

	got, _ := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	p := got.Root.Children[0]

	var types []string
	for _, c := range p.Children {
		types = append(types, c.Type)
	}
	want := []string{"link", "text", "link"}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	if p.Children[0].ID != "id-1" || p.Children[2].ID != "id-2" {
		t.Errorf("ids = %q, %q", p.Children[0].ID, p.Children[2].ID)
	}
}

func TestFixMalformedLinks_BeforeTextKeepsFormat(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`Important. (1) Source : "X" (https://x.example)`, FormatBold),
	))

	got, _ := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	before := got.Root.Children[0].Children[0]
	if before.TextFormat() != FormatBold {
		t.Errorf("before format = %d, want %d", before.TextFormat(), FormatBold)
	}
}

// The synthesized label drops the source leaf's format instead of inheriting
// it; stored trees were rewritten that way in production and depend on it.
// Inheriting would be the one-line alternative in newLinkNode.
func TestFixMalformedLinks_LabelFormatReset(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`(1) Source : "X" (https://x.example)`, FormatBold|FormatItalic),
	))

	got, _ := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	label := got.Root.Children[0].Children[0].Children[0]
	if label.TextFormat() != 0 {
		t.Errorf("label format = %d, want 0", label.TextFormat())
	}
}

func TestFixMalformedLinks_NoMatchReturnsSameDocument(t *testing.T) {
	doc := NewDocument(
		NewParagraph(NewTextNode("Rien à corriger ici.", 0)),
		NewParagraph(NewTextNode(`Source citée sans le motif: "X" https://x.example`, 0)),
	)

	got, changed := FixMalformedLinks(doc)
	if changed {
		t.Error("changed = true, want false")
	}
	if got != doc {
		t.Error("unmatched document must pass through by identity")
	}
}

func TestFixMalformedLinks_SiblingIdentityPreserved(t *testing.T) {
	clean := NewParagraph(NewTextNode("intact", 0))
	dirty := NewParagraph(NewTextNode(`(1) Source : "X" (https://x.example)`, 0))
	doc := NewDocument(clean, dirty)

	got, changed := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	if !changed {
		t.Fatal("expected a rewrite")
	}
	if !reflect.DeepEqual(got.Root.Children[0], clean) {
		t.Error("untouched sibling was modified")
	}
	if doc.Root.Children[1].Children[0].Type != "text" {
		t.Error("input document was mutated")
	}
}

func TestFixMalformedLinks_RecursesIntoNestedBlocks(t *testing.T) {
	doc := NewDocument(Node{
		Type: "quote",
		Children: []Node{
			NewTextNode(`(1) Source : "Profond" (https://deep.example)`, 0),
		},
	})

	got, changed := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	if !changed {
		t.Fatal("expected a rewrite inside the quote")
	}
	if got.Root.Children[0].Children[0].Type != "link" {
		t.Errorf("nested leaf not rewritten: %+v", got.Root.Children[0].Children)
	}
}

func TestFixMalformedLinks_Idempotent(t *testing.T) {
	doc := NewDocument(NewParagraph(
		NewTextNode(`Avant (1) Source : "Une étude" (https://example.com) après.`, 0),
	))

	once, changed := FixMalformedLinks(doc, WithIDGenerator(seqIDs()))
	if !changed {
		t.Fatal("first pass must rewrite")
	}

	twice, changed := FixMalformedLinks(once, WithIDGenerator(seqIDs()))
	if changed {
		t.Error("second pass must be a no-op")
	}
	if twice != once {
		t.Error("second pass must return its input by identity")
	}

	a, _ := json.Marshal(once)
	b, _ := json.Marshal(twice)
	if string(a) != string(b) {
		t.Errorf("fixpoint drift:\n%s\n%s", a, b)
	}
}

func TestFixMalformedLinks_NilDocument(t *testing.T) {
	got, changed := FixMalformedLinks(nil)
	if got != nil || changed {
		t.Errorf("FixMalformedLinks(nil) = %v, %v", got, changed)
	}
}
