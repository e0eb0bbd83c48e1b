package html

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// rawTextElements have their text content written verbatim.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\u00a0", "&nbsp;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")
)

// Prolog is the XML declaration stripped by StripArtifacts.
const Prolog = `<?xml version="1.0" encoding="utf-8"?>`

// Render returns the markup of n, including n itself.
// A document node renders as its children.
func Render(n *html.Node) string {
	var sb strings.Builder
	render(&sb, n)
	return sb.String()
}

// InnerHTML returns the markup of the children of n.
func InnerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(&sb, c)
	}
	return sb.String()
}

// Serialize renders n and removes the common indentation of its lines.
// Serialize(Parse(Serialize(n))) equals Serialize(n).
func Serialize(n *html.Node) string {
	return Dedent(Render(n))
}

func render(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(sb, c)
		}

	case html.TextNode:
		if p := n.Parent; p != nil && p.Type == html.ElementNode && isRawText(p.Data) {
			sb.WriteString(n.Data)
			return
		}
		sb.WriteString(textEscaper.Replace(n.Data))

	case html.CommentNode:
		// Processing instructions are tokenized as bogus comments.
		if strings.HasPrefix(n.Data, "?") {
			sb.WriteString("<" + n.Data + ">")
			return
		}
		sb.WriteString("<!--" + n.Data + "-->")

	case html.DoctypeNode:
		sb.WriteString("<!DOCTYPE " + n.Data + ">")

	case html.ElementNode:
		sb.WriteString("<" + n.Data)
		for _, a := range n.Attr {
			sb.WriteString(" " + a.Key)
			if a.Val != "" {
				sb.WriteString(`="` + attrEscaper.Replace(a.Val) + `"`)
			}
		}
		if n.FirstChild == nil && IsVoid(n.Data) {
			sb.WriteString(" />")
			return
		}
		sb.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(sb, c)
		}
		sb.WriteString("</" + n.Data + ">")
	}
}

// Dedent strips the minimum leading-whitespace width found among the
// non-blank lines of s from every line, keeping relative indentation.
// Whitespace-only lines are emptied.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if indent < 0 || width < indent {
			indent = width
		}
	}
	if indent <= 0 {
		return s
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = line[indent:]
	}
	return strings.Join(lines, "\n")
}

// EscapeDirectives doubles every '@' so that literal text is not read as a
// Razor directive. It is applied to source markup before parsing.
func EscapeDirectives(s string) string {
	return strings.ReplaceAll(s, "@", "@@")
}

// StripArtifacts removes a leading XML declaration and, when the declaration
// was immediately followed by a wrapping <span>, that span as well.
func StripArtifacts(s string) string {
	rest, ok := strings.CutPrefix(s, Prolog)
	if !ok {
		return s
	}
	if inner, ok := strings.CutPrefix(rest, "<span>"); ok {
		return strings.TrimSuffix(inner, "</span>")
	}
	return rest
}

func isRawText(name string) bool {
	return rawTextElements[strings.ToLower(name)]
}
