// Package content converts post bodies to Markdown and extracts their plain text.
package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/posts"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

var (
	scriptRe         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

	mdImageRe     = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLinkRe      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdCodeFenceRe = regexp.MustCompile("(?m)^```.*$")
	mdHeadingRe   = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s*`)
	mdQuoteRe     = regexp.MustCompile(`(?m)^\s{0,3}>\s?`)
	mdListRe      = regexp.MustCompile(`(?m)^\s*(?:[-*+]|\d+\.)\s+`)
	mdEmphasisRe  = regexp.MustCompile("[*_~`]+")
)

// markdownProcessor implements posts.ContentProcessor
type markdownProcessor struct {
	converter *md.Converter
}

// NewMarkdownProcessor creates a processor converting HTML with GitHub-flavoured Markdown rules
func NewMarkdownProcessor() posts.ContentProcessor {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &markdownProcessor{converter: converter}
}

// Process returns the Markdown to store and its plain text
func (p *markdownProcessor) Process(body, format string) (*posts.ProcessedContent, error) {
	switch format {
	case "", posts.FormatMarkdown:
		markdown := cleanMarkdown(body)
		return &posts.ProcessedContent{Markdown: markdown, PlainText: MarkdownText(markdown)}, nil

	case posts.FormatHTML:
		cleaned := styleRe.ReplaceAllString(scriptRe.ReplaceAllString(body, ""), "")
		markdown, err := p.converter.ConvertString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("convert html: %w", err)
		}
		return &posts.ProcessedContent{Markdown: cleanMarkdown(markdown), PlainText: HTMLText(cleaned)}, nil

	default:
		return nil, fmt.Errorf("unsupported content format %q", format)
	}
}

func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = excessiveLinesRe.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}

// HTMLText returns the visible text of an HTML fragment
func HTMLText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}

// MarkdownText strips Markdown syntax and returns the prose
func MarkdownText(markdown string) string {
	text := mdImageRe.ReplaceAllString(markdown, "$1")
	text = mdLinkRe.ReplaceAllString(text, "$1")
	text = mdCodeFenceRe.ReplaceAllString(text, "")
	text = mdHeadingRe.ReplaceAllString(text, "")
	text = mdQuoteRe.ReplaceAllString(text, "")
	text = mdListRe.ReplaceAllString(text, "")
	text = mdEmphasisRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
