package richtext

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is the top-level structure of an article body.
// The root node is always type "root"; its children are the block-level nodes.
type Document struct {
	Root Node `json:"root"`
}

// Node represents any node in the document tree.
// One struct covers every variant; Type discriminates.
type Node struct {
	Type     string `json:"type"`
	Version  int    `json:"version,omitempty"`
	Children []Node `json:"children,omitempty"`

	// Text specific
	Text   string      `json:"text,omitempty"`
	Format interface{} `json:"format,omitempty"` // int bitmask on text nodes, alignment/empty string on blocks
	Mode   string      `json:"mode,omitempty"`
	Style  string      `json:"style,omitempty"`
	Detail int         `json:"detail,omitempty"`

	// Block specific
	Direction string `json:"direction,omitempty"`
	Indent    int    `json:"indent,omitempty"`
	TextAlign string `json:"textAlign,omitempty"` // left, center, right, justify

	// Heading specific
	Tag string `json:"tag,omitempty"` // h1..h6 (also ul/ol on lists)

	// List specific
	ListType string `json:"listType,omitempty"` // bullet, number
	Start    int    `json:"start,omitempty"`

	// Link and custom block payloads
	ID     string  `json:"id,omitempty"`
	Fields *Fields `json:"fields,omitempty"`

	// Shared "value" slot: an item index on listitem nodes, a media
	// reference object on upload nodes. UploadValue() decodes the latter.
	Value interface{} `json:"value,omitempty"`

	RelationTo string `json:"relationTo,omitempty"`
}

// UploadValue decodes the value slot of an upload node. Returns nil when the
// node carries no usable media reference.
func (n *Node) UploadValue() *UploadValue {
	switch v := n.Value.(type) {
	case *UploadValue:
		return v
	case UploadValue:
		return &v
	case map[string]interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var uv UploadValue
		if err := json.Unmarshal(b, &uv); err != nil {
			return nil
		}
		return &uv
	}
	return nil
}

// Fields carries link targets and custom block data.
type Fields struct {
	URL       string `json:"url,omitempty"`
	LinkType  string `json:"linkType,omitempty"`
	BlockType string `json:"blockType,omitempty"`
	BlockName string `json:"blockName,omitempty"`

	// Video block fields
	VideoType string `json:"videoType,omitempty"` // youtube, vimeo
	YoutubeID string `json:"youtubeID,omitempty"`
	VimeoID   string `json:"vimeoID,omitempty"`
	Title     string `json:"title,omitempty"`
}

// UploadValue references a media row plus display metadata.
// Legend and Legent are synonyms: older rows carry the misspelled key.
type UploadValue struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url,omitempty"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Legend string `json:"legend,omitempty"`
	Legent string `json:"legent,omitempty"`
}

// UnmarshalJSON tolerates numeric media ids, which the previous CMS produced.
func (v *UploadValue) UnmarshalJSON(b []byte) error {
	type alias UploadValue
	aux := struct {
		ID interface{} `json:"id"`
		*alias
	}{alias: (*alias)(v)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	switch id := aux.ID.(type) {
	case string:
		v.ID = id
	case float64:
		v.ID = strconv.FormatFloat(id, 'f', -1, 64)
	}
	return nil
}

// Caption returns whichever legend spelling is present.
func (v *UploadValue) Caption() string {
	if v == nil {
		return ""
	}
	if v.Legend != "" {
		return v.Legend
	}
	return v.Legent
}

// Text format bitmask. Bits combine with OR and decode independently.
const (
	FormatBold          = 1
	FormatItalic        = 2
	FormatStrikethrough = 4
	FormatUnderline     = 8
	FormatCode          = 16
)

// TextFormat decodes the format bitmask of a text node.
// JSON numbers arrive as float64 (or json.Number when decoded with UseNumber);
// block nodes carry a string here, which decodes to 0.
func (n *Node) TextFormat() int {
	switch f := n.Format.(type) {
	case float64:
		return int(f)
	case int:
		return f
	case json.Number:
		v, err := f.Int64()
		if err != nil {
			return 0
		}
		return int(v)
	}
	return 0
}

// Alignment of block nodes.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Alignment resolves a node's alignment. The textAlign field wins; legacy
// rows encode alignment inside the string-typed format field instead.
func (n *Node) Alignment() Alignment {
	switch n.TextAlign {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	case "justify":
		return AlignJustify
	case "left":
		return AlignLeft
	}

	if s, ok := n.Format.(string); ok {
		switch {
		case strings.Contains(s, "center"):
			return AlignCenter
		case strings.Contains(s, "right"):
			return AlignRight
		case strings.Contains(s, "justify"):
			return AlignJustify
		}
	}

	return AlignLeft
}

// Content is the boundary union of the two stored body representations:
// a document tree, or a raw pre-rendered HTML string from the legacy CMS.
// The zero value means "no content".
type Content struct {
	Doc  *Document
	HTML string
}

// TreeContent wraps a document tree.
func TreeContent(doc *Document) Content {
	return Content{Doc: doc}
}

// StringContent wraps legacy pre-rendered markup.
func StringContent(html string) Content {
	return Content{HTML: html}
}

// IsEmpty reports whether there is nothing to render or extract.
func (c Content) IsEmpty() bool {
	return c.Doc == nil && c.HTML == ""
}

// ParseContent sniffs a stored body column. Document JSON starts with
// {"root": after trimming; anything else is treated as legacy markup.
// A JSON blob that fails to decode falls back to the string path rather
// than erroring: stored content must always render something.
func ParseContent(raw string) Content {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Content{}
	}
	if !strings.HasPrefix(trimmed, `{"root"`) {
		return StringContent(raw)
	}

	var doc Document
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return StringContent(raw)
	}
	return TreeContent(&doc)
}

// NewDocument builds an empty document with a conventional root.
func NewDocument(children ...Node) *Document {
	if children == nil {
		children = []Node{}
	}
	return &Document{
		Root: Node{
			Type:     "root",
			Format:   "",
			Indent:   0,
			Version:  1,
			Children: children,
		},
	}
}

// NewTextNode builds a text leaf with the given format bitmask.
func NewTextNode(text string, format int) Node {
	return Node{
		Type:    "text",
		Text:    text,
		Format:  format,
		Mode:    "normal",
		Style:   "",
		Detail:  0,
		Version: 1,
	}
}

// NewParagraph wraps children in a paragraph block.
func NewParagraph(children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{
		Type:     "paragraph",
		Format:   "",
		Indent:   0,
		Version:  1,
		Children: children,
	}
}
