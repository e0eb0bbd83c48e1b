// Package razor transforms parsed Pinegrow markup into Blazor Razor templates.
//
// Element lookups go through goquery over trees built by the html package;
// every rewrite collects its targets first and mutates the tree afterwards.
package razor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	rzhtml "github.com/fwojciec/razorgen/html"
	"golang.org/x/net/html"
)

// Blazor components substituted for native form elements.
const (
	FormComponent     = "EditForm"
	CheckboxComponent = "InputCheckbox"
)

// RewriteForms replaces every native <form> with an EditForm that keeps the
// attributes and children of the form. It returns the number of rewritten forms.
func RewriteForms(root *html.Node) int {
	forms := findAll(root, func(n *html.Node) bool {
		return rzhtml.IsTag(n, "form")
	})
	for _, form := range forms {
		rzhtml.Replace(form, rzhtml.NewElement(FormComponent, form.Attr), true)
	}
	return len(forms)
}

// RewriteCheckboxes replaces every <input type="checkbox"> with an
// InputCheckbox carrying all attributes except type. It returns the number
// of rewritten inputs.
func RewriteCheckboxes(root *html.Node) int {
	checkboxes := findAll(root, isCheckbox)
	for _, input := range checkboxes {
		attrs := make([]html.Attribute, 0, len(input.Attr))
		for _, a := range input.Attr {
			if strings.EqualFold(a.Key, "type") {
				continue
			}
			attrs = append(attrs, a)
		}
		rzhtml.Replace(input, rzhtml.NewElement(CheckboxComponent, attrs), true)
	}
	return len(checkboxes)
}

func isCheckbox(n *html.Node) bool {
	if !rzhtml.IsTag(n, "input") {
		return false
	}
	typ, _ := rzhtml.Attr(n, "type")
	return strings.EqualFold(strings.TrimSpace(typ), "checkbox")
}

// findAll returns the descendants of root matching pred, in document order.
func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	return goquery.NewDocumentFromNode(root).
		Find("*").
		FilterFunction(func(_ int, s *goquery.Selection) bool {
			return pred(s.Get(0))
		}).
		Nodes
}

// findFirst returns the first descendant of root matching pred, or nil.
func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if nodes := findAll(root, pred); len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}
