package richtext

import (
	"regexp"
	"strings"
)

// metaDescriptionLimit is the character budget for extracted summaries,
// sized for the meta description tag.
const metaDescriptionLimit = 160

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// ToPlainText extracts a plain-text summary from article content.
//
// Legacy string bodies are stripped of tags, whitespace-collapsed and
// hard-cut at the limit. Tree bodies are concatenated (paragraphs and
// headings contribute a trailing separator, uploads their alt text,
// rules a space), collapsed, then truncated at the last word boundary
// within the limit with a "..." suffix.
func ToPlainText(c Content) string {
	if c.IsEmpty() {
		return ""
	}

	if c.Doc == nil {
		text := tagPattern.ReplaceAllString(c.HTML, "")
		text = spacePattern.ReplaceAllString(text, " ")
		text = strings.TrimSpace(text)
		runes := []rune(text)
		if len(runes) > metaDescriptionLimit {
			return string(runes[:metaDescriptionLimit])
		}
		return text
	}

	var sb strings.Builder
	for i := range c.Doc.Root.Children {
		extractText(&sb, &c.Doc.Root.Children[i])
	}

	text := spacePattern.ReplaceAllString(sb.String(), " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) <= metaDescriptionLimit {
		return text
	}

	truncated := runes[:metaDescriptionLimit]
	if i := lastSpace(truncated); i > 0 {
		truncated = truncated[:i]
	}
	return string(truncated) + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func extractText(sb *strings.Builder, n *Node) {
	switch n.Type {
	case "text":
		sb.WriteString(n.Text)

	case "paragraph", "heading":
		for i := range n.Children {
			extractText(sb, &n.Children[i])
		}
		// Block boundary: keep adjacent blocks from running together.
		sb.WriteString(" ")

	case "upload":
		if v := n.UploadValue(); v != nil && v.Alt != "" {
			sb.WriteString("[" + v.Alt + "] ")
		}

	case "horizontalrule":
		sb.WriteString(" ")

	default:
		// list, listitem, quote, link, code, anything future: text lives in
		// the children.
		for i := range n.Children {
			extractText(sb, &n.Children[i])
		}
	}
}
