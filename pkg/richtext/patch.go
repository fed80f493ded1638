package richtext

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Early migrated articles carry citation links flattened into plain text:
//
//	(1) Source : "Une étude sur X" (https://example.com/etude)
//
// sometimes with a "Communiqué :" infix. The pattern captures the label and
// the URL; the ordinal and the scaffolding around them are dropped.
var malformedLinkPattern = regexp.MustCompile(
	`(?i)\(\d+\)\s*Source\s*:\s*(?:Communiqué\s*:\s*)?"([^"]+)"\s*\((https?://[^)]+)\)`,
)

// IDGenerator produces ids for synthesized link nodes.
type IDGenerator func() string

type PatchOption func(*patcher)

// WithIDGenerator overrides the id source for synthesized nodes.
// Tests inject a deterministic sequence here.
func WithIDGenerator(gen IDGenerator) PatchOption {
	return func(p *patcher) {
		p.newID = gen
	}
}

type patcher struct {
	newID IDGenerator
}

// FixMalformedLinks rewrites flattened citation links into proper link nodes.
//
// Each match inside a text leaf is spliced into up to three siblings: the
// text before the match (keeping the leaf's format), a link node wrapping the
// label, and the text after (dropped when it is only whitespace). Leaves
// without a match are passed through untouched, and when nothing in the tree
// matches, the input document is returned as-is with changed=false.
//
// The rewrite is idempotent: synthesized link labels no longer match the
// pattern, so running it again is a no-op.
func FixMalformedLinks(doc *Document, opts ...PatchOption) (*Document, bool) {
	if doc == nil {
		return nil, false
	}

	p := &patcher{newID: uuid.NewString}
	for _, opt := range opts {
		opt(p)
	}

	children, changed := p.transformSlice(doc.Root.Children)
	if !changed {
		return doc, false
	}

	root := doc.Root
	root.Children = children
	return &Document{Root: root}, true
}

func (p *patcher) transformSlice(nodes []Node) ([]Node, bool) {
	out := make([]Node, 0, len(nodes))
	changed := false
	for i := range nodes {
		parts, ok := p.transformNode(&nodes[i])
		if ok {
			changed = true
			out = append(out, parts...)
		} else {
			out = append(out, nodes[i])
		}
	}
	if !changed {
		return nodes, false
	}
	return out, true
}

// transformNode returns the replacement sequence for a node and whether
// anything changed. ok=false means the caller keeps the original node.
func (p *patcher) transformNode(n *Node) ([]Node, bool) {
	if n.Type == "text" && n.Text != "" {
		if parts, ok := p.spliceText(n); ok {
			return parts, true
		}
		return nil, false
	}

	if len(n.Children) == 0 {
		return nil, false
	}

	children, changed := p.transformSlice(n.Children)
	if !changed {
		return nil, false
	}
	clone := *n
	clone.Children = children
	return []Node{clone}, true
}

func (p *patcher) spliceText(n *Node) ([]Node, bool) {
	matches := malformedLinkPattern.FindAllStringSubmatchIndex(n.Text, -1)
	if len(matches) == 0 {
		return nil, false
	}

	format := n.TextFormat()
	var parts []Node
	last := 0

	for _, m := range matches {
		start, end := m[0], m[1]
		label := n.Text[m[2]:m[3]]
		url := n.Text[m[4]:m[5]]

		if start > last {
			parts = append(parts, NewTextNode(n.Text[last:start], format))
		}
		parts = append(parts, p.newLinkNode(strings.TrimSpace(label), strings.TrimSpace(url)))

		last = end
	}

	// Trailing text survives only if it carries something visible.
	if last < len(n.Text) {
		rest := n.Text[last:]
		if strings.TrimSpace(rest) != "" {
			parts = append(parts, NewTextNode(rest, format))
		}
	}

	return parts, true
}

func (p *patcher) newLinkNode(label, url string) Node {
	return Node{
		ID:   p.newID(),
		Type: "link",
		Fields: &Fields{
			URL:      url,
			LinkType: "custom",
		},
		Format:    "",
		Indent:    0,
		Version:   3,
		Direction: "ltr",
		Children: []Node{
			// The label intentionally drops the source leaf's format: the
			// production rewrite emitted format 0 and stored trees depend
			// on it now.
			NewTextNode(label, 0),
		},
	}
}
