// Package html parses and renders Pinegrow markup on top of golang.org/x/net/html.
//
// Unlike html.Parse, the parser here does not build a conformant HTML5
// document: fragments stay fragments, no <html>/<head>/<body> wrappers are
// synthesized, and tag names and attribute keys keep their original case so
// that Razor component tags survive a parse/render round trip.
package html

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/razorgen"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never have children or end tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// impliedEnd lists, for a start tag, the open elements it closes when they
// are on top of the stack.
var impliedEnd = map[string][]string{
	"li":     {"li"},
	"dt":     {"dt", "dd"},
	"dd":     {"dt", "dd"},
	"option": {"option"},
	"tr":     {"td", "th", "tr"},
	"td":     {"td", "th"},
	"th":     {"td", "th"},
}

// closesParagraph lists the start tags that close an open <p>.
var closesParagraph = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"div": true, "dl": true, "fieldset": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "ul": true,
}

// Parse builds a node tree from markup. It tolerates fragments and tag soup:
// unmatched end tags are dropped and elements left open at EOF are closed.
// The returned node is an html.DocumentNode.
//
// Returns EINVALID if the text looks binary (NUL bytes or invalid UTF-8).
func Parse(text string) (*html.Node, error) {
	if strings.ContainsRune(text, 0) || !utf8.ValidString(text) {
		return nil, razorgen.Errorf(razorgen.EINVALID, "content is not valid UTF-8 text")
	}

	root := &html.Node{Type: html.DocumentNode}
	stack := []*html.Node{root}
	top := func() *html.Node { return stack[len(stack)-1] }

	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, razorgen.Errorf(razorgen.EINVALID, "failed to tokenize HTML: %v", err)
			}
			return root, nil
		}

		raw := string(z.Raw())
		tok := z.Token()

		switch tt {
		case html.TextToken:
			appendText(top(), tok.Data)

		case html.StartTagToken, html.SelfClosingTagToken:
			name := originalName(raw, tok.Data)
			lower := strings.ToLower(name)
			native := !IsComponentName(name)

			if native {
				for len(stack) > 1 && closedBy(strings.ToLower(top().Data), lower) {
					stack = stack[:len(stack)-1]
				}
			}

			el := &html.Node{
				Type: html.ElementNode,
				Data: name,
				Attr: originalAttrs(raw, tok.Attr),
			}
			if native {
				el.DataAtom = atom.Lookup([]byte(lower))
			}
			top().AppendChild(el)

			if tt == html.StartTagToken && !(native && voidElements[lower]) {
				stack = append(stack, el)
			}

		case html.EndTagToken:
			for i := len(stack) - 1; i > 0; i-- {
				if strings.EqualFold(stack[i].Data, tok.Data) {
					stack = stack[:i]
					break
				}
			}

		case html.CommentToken:
			top().AppendChild(&html.Node{Type: html.CommentNode, Data: tok.Data})

		case html.DoctypeToken:
			top().AppendChild(&html.Node{Type: html.DoctypeNode, Data: tok.Data})
		}
	}
}

// closedBy reports whether an open element is implicitly closed by a start tag.
func closedBy(open, start string) bool {
	if open == "p" && closesParagraph[start] {
		return true
	}
	for _, tag := range impliedEnd[start] {
		if tag == open {
			return true
		}
	}
	return false
}

// appendText adds text to parent, merging with a trailing text node.
func appendText(parent *html.Node, data string) {
	if data == "" {
		return
	}
	if last := parent.LastChild; last != nil && last.Type == html.TextNode {
		last.Data += data
		return
	}
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: data})
}

// originalName recovers the tag name as written in the raw token.
// The tokenizer lower-cases names; lower is that lower-cased form.
func originalName(raw, lower string) string {
	s := strings.TrimPrefix(raw, "<")
	end := strings.IndexFunc(s, isNameTerminator)
	if end < 0 {
		end = len(s)
	}
	if name := s[:end]; strings.EqualFold(name, lower) {
		return name
	}
	return lower
}

// originalAttrs restores the written case of attribute keys. Keys that
// cannot be matched positionally against the raw token stay lower-cased.
func originalAttrs(raw string, attrs []html.Attribute) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}

	names := scanAttrNames(raw)
	out := make([]html.Attribute, len(attrs))
	for i, a := range attrs {
		out[i] = a
		if i < len(names) && strings.EqualFold(names[i], a.Key) {
			out[i].Key = names[i]
		}
	}
	return out
}

// scanAttrNames lists the attribute names of a raw start tag in order,
// skipping over attribute values.
func scanAttrNames(raw string) []string {
	s := strings.TrimPrefix(raw, "<")
	pos := strings.IndexFunc(s, isNameTerminator)
	if pos < 0 {
		return nil
	}

	var names []string
	for pos < len(s) {
		for pos < len(s) && (isSpace(s[pos]) || s[pos] == '/') {
			pos++
		}
		if pos >= len(s) || s[pos] == '>' {
			break
		}

		start := pos
		pos++ // a leading '=' belongs to the name
		for pos < len(s) && !isSpace(s[pos]) && s[pos] != '/' && s[pos] != '>' && s[pos] != '=' {
			pos++
		}
		names = append(names, s[start:pos])

		for pos < len(s) && isSpace(s[pos]) {
			pos++
		}
		if pos >= len(s) || s[pos] != '=' {
			continue
		}
		pos++
		for pos < len(s) && isSpace(s[pos]) {
			pos++
		}
		if pos < len(s) && (s[pos] == '"' || s[pos] == '\'') {
			quote := s[pos]
			end := strings.IndexByte(s[pos+1:], quote)
			if end < 0 {
				break
			}
			pos += end + 2
			continue
		}
		for pos < len(s) && !isSpace(s[pos]) && s[pos] != '>' {
			pos++
		}
	}
	return names
}

func isNameTerminator(r rune) bool {
	return r == '/' || r == '>' || r < utf8.RuneSelf && isSpace(byte(r))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
