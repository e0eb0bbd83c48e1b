package html

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// IsComponentName reports whether a tag name follows the Razor component
// convention: an upper-case first letter followed by at least one lower-case
// letter (e.g., EditForm), and no HTML name of any case. Tag names are
// case-insensitive, so <Form> and <Img> are native elements.
func IsComponentName(name string) bool {
	first, size := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return false
	}
	if strings.IndexFunc(name[size:], unicode.IsLower) < 0 {
		return false
	}
	return atom.Lookup([]byte(strings.ToLower(name))) == 0
}

// IsVoid reports whether name is an HTML void element.
func IsVoid(name string) bool {
	return !IsComponentName(name) && voidElements[strings.ToLower(name)]
}

// IsTag reports whether n is the native HTML element tag.
// Tag matching is case-insensitive; component names never match.
func IsTag(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode &&
		!IsComponentName(n.Data) && strings.EqualFold(n.Data, tag)
}

// Attr returns the value of the attribute key and whether it is present.
// Keys are compared case-insensitively.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether n carries the attribute key.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets the value of the attribute key, appending it if absent.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes every occurrence of the attribute key.
func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, key) {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// Children returns a snapshot of the child nodes of n, safe to iterate
// while the tree is mutated.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// HasElementChildren reports whether any child of n is an element.
func HasElementChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// SetInnerText replaces every child of n with a single text node.
func SetInnerText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// NewElement returns a detached element with a copy of attrs.
func NewElement(name string, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type: html.ElementNode,
		Data: name,
		Attr: append([]html.Attribute(nil), attrs...),
	}
}

// Replace puts repl in place of old. Children of old are moved to repl
// when moveChildren is set. Replacing a detached node is a no-op that
// returns false.
func Replace(old, repl *html.Node, moveChildren bool) bool {
	if moveChildren {
		for c := old.FirstChild; c != nil; c = old.FirstChild {
			old.RemoveChild(c)
			repl.AppendChild(c)
		}
	}
	if old.Parent == nil {
		return false
	}
	old.Parent.InsertBefore(repl, old)
	old.Parent.RemoveChild(old)
	return true
}
