package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"newsroom-be/pkg/richtext"
)

// AssetResolver maps a Contentful asset id to a local media id. It may block
// (database or cache lookup) and must honor the context. Returning an empty
// id without an error means the asset is unknown here.
type AssetResolver func(ctx context.Context, assetID string) (string, error)

// LinkMode selects how hyperlink nodes import.
type LinkMode int

const (
	// LinkAsText flattens a hyperlink into a "label (url)" text leaf. This is
	// what the first migration produced; FixMalformedLinks exists to undo a
	// variant of it.
	LinkAsText LinkMode = iota
	// LinkAsNode imports hyperlinks as proper link nodes.
	LinkAsNode
)

// Importer converts Contentful rich text into a Document.
type Importer struct {
	resolver AssetResolver
	linkMode LinkMode
	log      *zap.Logger
	newID    func() string
	limit    int
}

type Option func(*Importer)

// WithAssetResolver wires the media lookup used for embedded asset blocks.
// Without one, every embedded asset imports as a placeholder paragraph.
func WithAssetResolver(r AssetResolver) Option {
	return func(i *Importer) {
		i.resolver = r
	}
}

func WithLinkMode(m LinkMode) Option {
	return func(i *Importer) {
		i.linkMode = m
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(i *Importer) {
		i.log = log
	}
}

// WithIDGenerator overrides the id source for synthesized link nodes.
func WithIDGenerator(gen func() string) Option {
	return func(i *Importer) {
		i.newID = gen
	}
}

// WithConcurrency caps how many sibling blocks convert at once. Zero or
// negative means unlimited.
func WithConcurrency(n int) Option {
	return func(i *Importer) {
		i.limit = n
	}
}

func NewImporter(opts ...Option) *Importer {
	i := &Importer{
		linkMode: LinkAsText,
		log:      zap.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// ImportJSON decodes a Contentful rich text document and imports it.
func (i *Importer) ImportJSON(ctx context.Context, raw []byte) (*richtext.Document, error) {
	var doc Node
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode contentful document: %w", err)
	}
	return i.Import(ctx, &doc)
}

// Import converts a Contentful document node into a Document.
//
// Sibling blocks convert concurrently because asset resolution can block on
// I/O per block; results are collected by index, so output order always
// matches input order.
func (i *Importer) Import(ctx context.Context, doc *Node) (*richtext.Document, error) {
	if doc == nil || len(doc.Content) == 0 {
		return richtext.NewDocument(), nil
	}

	children, err := i.convertBlocks(ctx, doc.Content)
	if err != nil {
		return nil, err
	}
	return richtext.NewDocument(children...), nil
}

func (i *Importer) convertBlocks(ctx context.Context, blocks []Node) ([]richtext.Node, error) {
	results := make([]*richtext.Node, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	if i.limit > 0 {
		g.SetLimit(i.limit)
	}
	for idx := range blocks {
		g.Go(func() error {
			n, err := i.convertBlock(ctx, &blocks[idx])
			if err != nil {
				return err
			}
			results[idx] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]richtext.Node, 0, len(results))
	for _, n := range results {
		if n != nil {
			out = append(out, *n)
		}
	}
	return out, nil
}

// convertBlock maps one block-level node. A nil result with nil error means
// the node has no counterpart and is skipped.
func (i *Importer) convertBlock(ctx context.Context, n *Node) (*richtext.Node, error) {
	switch n.NodeType {
	case "paragraph":
		p := richtext.NewParagraph(i.convertInline(n.Content)...)
		return &p, nil

	case "heading-1", "heading-2", "heading-3", "heading-4", "heading-5", "heading-6":
		return &richtext.Node{
			Type:     "heading",
			Tag:      "h" + n.NodeType[len("heading-"):],
			Format:   "",
			Indent:   0,
			Version:  1,
			Children: i.convertInline(n.Content),
		}, nil

	case "unordered-list":
		return i.convertList(ctx, n, "bullet", "ul")

	case "ordered-list":
		return i.convertList(ctx, n, "number", "ol")

	case "blockquote":
		return &richtext.Node{
			Type:     "quote",
			Format:   "",
			Indent:   0,
			Version:  1,
			Children: i.convertInline(n.Content),
		}, nil

	case "hr":
		return &richtext.Node{Type: "horizontalrule", Version: 1}, nil

	case "embedded-asset-block":
		return i.convertEmbeddedAsset(ctx, n)

	default:
		// Unknown block types keep their text by importing as a paragraph.
		if len(n.Content) == 0 {
			return nil, nil
		}
		p := richtext.NewParagraph(i.convertInline(n.Content)...)
		return &p, nil
	}
}

func (i *Importer) convertList(ctx context.Context, n *Node, listType, tag string) (*richtext.Node, error) {
	items := make([]richtext.Node, 0, len(n.Content))
	for idx := range n.Content {
		item := &n.Content[idx]
		if item.NodeType != "list-item" {
			continue
		}
		children, err := i.convertBlocks(ctx, item.Content)
		if err != nil {
			return nil, err
		}
		items = append(items, richtext.Node{
			Type:     "listitem",
			Format:   "",
			Indent:   0,
			Value:    1,
			Version:  1,
			Children: children,
		})
	}

	return &richtext.Node{
		Type:     "list",
		ListType: listType,
		Tag:      tag,
		Start:    1,
		Format:   "",
		Indent:   0,
		Version:  1,
		Children: items,
	}, nil
}

func (i *Importer) convertInline(nodes []Node) []richtext.Node {
	out := make([]richtext.Node, 0, len(nodes))
	for idx := range nodes {
		out = append(out, i.convertInlineNode(&nodes[idx])...)
	}
	return out
}

func (i *Importer) convertInlineNode(n *Node) []richtext.Node {
	switch n.NodeType {
	case "text":
		return []richtext.Node{richtext.NewTextNode(n.Value, marksToFormat(n.Marks))}

	case "hyperlink":
		return []richtext.Node{i.convertHyperlink(n)}

	default:
		// Unknown inline types flatten into their content.
		if len(n.Content) == 0 {
			return nil
		}
		return i.convertInline(n.Content)
	}
}

func (i *Importer) convertHyperlink(n *Node) richtext.Node {
	url := strings.TrimSpace(n.Data.URI)
	if url == "" {
		url = "#"
	}

	if i.linkMode == LinkAsNode {
		return richtext.Node{
			ID:   i.newID(),
			Type: "link",
			Fields: &richtext.Fields{
				URL:      url,
				LinkType: "custom",
			},
			Format:    "",
			Indent:    0,
			Version:   3,
			Direction: "ltr",
			Children:  i.convertInline(n.Content),
		}
	}

	label := "Lien"
	if len(n.Content) > 0 && n.Content[0].Value != "" {
		label = n.Content[0].Value
	}
	return richtext.NewTextNode(fmt.Sprintf("%s (%s)", label, url), 0)
}

func marksToFormat(marks []Mark) int {
	format := 0
	for _, m := range marks {
		switch m.Type {
		case "bold":
			format |= richtext.FormatBold
		case "italic":
			format |= richtext.FormatItalic
		case "strikethrough":
			format |= richtext.FormatStrikethrough
		case "underline":
			format |= richtext.FormatUnderline
		case "code":
			format |= richtext.FormatCode
		}
	}
	return format
}

// convertEmbeddedAsset imports an embedded asset block as an upload node when
// the asset resolves, and as an italic placeholder paragraph when it does not.
// A resolver failure degrades to the placeholder instead of failing the whole
// import: one missing image must not lose an article.
func (i *Importer) convertEmbeddedAsset(ctx context.Context, n *Node) (*richtext.Node, error) {
	title := "Image intégrée"
	var assetID string
	if n.Data.Target != nil {
		assetID = n.Data.Target.Sys.ID
		if n.Data.Target.Fields.Title != "" {
			title = n.Data.Target.Fields.Title
		}
	}

	if i.resolver == nil || assetID == "" {
		return assetPlaceholder(title), nil
	}

	mediaID, err := i.resolver(ctx, assetID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		i.log.Warn("asset resolution failed",
			zap.String("assetId", assetID),
			zap.Error(err),
		)
		return assetPlaceholder(title + " - Erreur de chargement"), nil
	}
	if mediaID == "" {
		i.log.Warn("asset not found", zap.String("assetId", assetID))
		return assetPlaceholder(title + " - Image non trouvée"), nil
	}

	return &richtext.Node{
		Type:       "upload",
		Value:      &richtext.UploadValue{ID: mediaID},
		RelationTo: "media",
		Version:    1,
	}, nil
}

func assetPlaceholder(text string) *richtext.Node {
	p := richtext.NewParagraph(
		richtext.NewTextNode("["+text+"]", richtext.FormatItalic),
	)
	return &p
}
