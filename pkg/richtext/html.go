package richtext

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Renderer converts article content to display HTML.
//
// Rendering is a trust boundary: text leaves are escaped before the format
// wrappers are applied, and the legacy pre-rendered-string path is run
// through a bluemonday UGC policy instead of being passed through raw.
type Renderer struct {
	log       *zap.Logger
	sanitizer *bluemonday.Policy
}

type RendererOption func(*Renderer)

// WithLogger attaches a logger for unsupported-node diagnostics.
func WithLogger(log *zap.Logger) RendererOption {
	return func(r *Renderer) {
		r.log = log
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("target", "rel").OnElements("a")

	r := &Renderer{
		log:       zap.NewNop(),
		sanitizer: p,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRenderer = NewRenderer()

// RenderHTML renders content with the default renderer.
func RenderHTML(c Content) string {
	return defaultRenderer.Render(c)
}

// Render dispatches on the content representation: legacy strings are
// sanitized and passed through, trees are walked node by node.
func (r *Renderer) Render(c Content) string {
	if c.IsEmpty() {
		return ""
	}
	if c.Doc == nil {
		return r.sanitizer.Sanitize(c.HTML)
	}

	var sb strings.Builder
	for i := range c.Doc.Root.Children {
		r.renderNode(&sb, &c.Doc.Root.Children[i])
	}
	return sb.String()
}

func alignClass(n *Node) string {
	switch n.Alignment() {
	case AlignCenter:
		return "text-center"
	case AlignRight:
		return "text-right"
	case AlignJustify:
		return "text-justify"
	}
	return "text-left"
}

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func (r *Renderer) renderNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case "paragraph":
		// Empty paragraphs keep their vertical space via a nbsp placeholder.
		if len(n.Children) == 0 {
			fmt.Fprintf(sb, `<p class="%s">&nbsp;</p>`, alignClass(n))
			return
		}
		fmt.Fprintf(sb, `<p class="%s">`, alignClass(n))
		r.renderChildren(sb, n)
		sb.WriteString("</p>")

	case "heading":
		tag := n.Tag
		if !headingTags[tag] {
			tag = "h2"
		}
		fmt.Fprintf(sb, `<%s class="%s">`, tag, alignClass(n))
		r.renderChildren(sb, n)
		fmt.Fprintf(sb, "</%s>", tag)

	case "list":
		tag := "ul"
		if n.ListType == "number" {
			tag = "ol"
		}
		fmt.Fprintf(sb, `<%s class="%s">`, tag, alignClass(n))
		r.renderChildren(sb, n)
		fmt.Fprintf(sb, "</%s>", tag)

	case "listitem":
		sb.WriteString("<li>")
		r.renderChildren(sb, n)
		sb.WriteString("</li>")

	case "quote":
		fmt.Fprintf(sb, `<blockquote class="%s">`, alignClass(n))
		r.renderChildren(sb, n)
		sb.WriteString("</blockquote>")

	case "text":
		sb.WriteString(r.renderText(n))

	case "link":
		r.renderLink(sb, n)

	case "upload":
		r.renderUpload(sb, n)

	case "horizontalrule":
		sb.WriteString("<hr>")

	case "code":
		sb.WriteString("<pre><code>")
		r.renderChildren(sb, n)
		sb.WriteString("</code></pre>")

	case "block":
		r.renderBlock(sb, n)

	default:
		// Unknown node types degrade to a transparent wrapper so legacy and
		// future content keeps rendering. Leaves render nothing.
		if len(n.Children) > 0 {
			sb.WriteString("<div>")
			r.renderChildren(sb, n)
			sb.WriteString("</div>")
		}
	}
}

func (r *Renderer) renderChildren(sb *strings.Builder, n *Node) {
	for i := range n.Children {
		r.renderNode(sb, &n.Children[i])
	}
}

// renderText escapes the leaf text, then applies one wrapper per set format
// bit. Order is fixed: bold, italic, strikethrough, underline, code, each
// wrapping the previous, so bold ends up innermost and code outermost.
func (r *Renderer) renderText(n *Node) string {
	text := html.EscapeString(n.Text)

	format := n.TextFormat()
	if format&FormatBold != 0 {
		text = "<strong>" + text + "</strong>"
	}
	if format&FormatItalic != 0 {
		text = "<em>" + text + "</em>"
	}
	if format&FormatStrikethrough != 0 {
		text = "<s>" + text + "</s>"
	}
	if format&FormatUnderline != 0 {
		text = "<u>" + text + "</u>"
	}
	if format&FormatCode != 0 {
		text = "<code>" + text + "</code>"
	}

	return text
}

func (r *Renderer) renderLink(sb *strings.Builder, n *Node) {
	url := "#"
	if n.Fields != nil && n.Fields.URL != "" {
		url = n.Fields.URL
	}

	// Absolute URLs leave the site: open in a new tab without a referrer.
	// Relative URLs are in-app navigation and stay in the same tab.
	if strings.HasPrefix(url, "http") {
		fmt.Fprintf(sb, `<a href="%s" class="underline" target="_blank" rel="noopener noreferrer">`, html.EscapeString(url))
	} else {
		fmt.Fprintf(sb, `<a href="%s" class="underline">`, html.EscapeString(url))
	}
	r.renderChildren(sb, n)
	sb.WriteString("</a>")
}

func (r *Renderer) renderUpload(sb *strings.Builder, n *Node) {
	v := n.UploadValue()
	if v == nil || v.URL == "" {
		// Not resolvable to a displayable URL: nothing to show.
		return
	}

	sb.WriteString(`<figure class="upload">`)
	fmt.Fprintf(sb, `<img src="%s" alt="%s"`, html.EscapeString(v.URL), html.EscapeString(v.Alt))
	if v.Width > 0 {
		fmt.Fprintf(sb, ` width="%d"`, v.Width)
	}
	if v.Height > 0 {
		fmt.Fprintf(sb, ` height="%d"`, v.Height)
	}
	sb.WriteString(">")
	if caption := v.Caption(); caption != "" {
		fmt.Fprintf(sb, "<figcaption>%s</figcaption>", html.EscapeString(caption))
	}
	sb.WriteString("</figure>")
}

func (r *Renderer) renderBlock(sb *strings.Builder, n *Node) {
	if n.Fields == nil {
		return
	}

	switch n.Fields.BlockType {
	case "video":
		r.renderVideoBlock(sb, n.Fields)
	default:
		r.log.Warn("unsupported block type in renderer",
			zap.String("blockType", n.Fields.BlockType),
		)
		fmt.Fprintf(sb, `<div class="unsupported-block">Block non supporté: %s</div>`, html.EscapeString(n.Fields.BlockType))
	}
}

func (r *Renderer) renderVideoBlock(sb *strings.Builder, f *Fields) {
	var src string
	switch f.VideoType {
	case "youtube":
		if f.YoutubeID == "" {
			return
		}
		src = "https://www.youtube-nocookie.com/embed/" + f.YoutubeID
	case "vimeo":
		if f.VimeoID == "" {
			return
		}
		src = "https://player.vimeo.com/video/" + f.VimeoID
	default:
		return
	}

	sb.WriteString(`<figure class="video-block">`)
	if f.Title != "" {
		fmt.Fprintf(sb, "<h3>%s</h3>", html.EscapeString(f.Title))
	}
	fmt.Fprintf(sb, `<iframe src="%s" title="%s" allowfullscreen></iframe>`, html.EscapeString(src), html.EscapeString(f.Title))
	sb.WriteString("</figure>")
}
