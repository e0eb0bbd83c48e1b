package razor

import (
	"strings"

	"github.com/fwojciec/razorgen"
	rzhtml "github.com/fwojciec/razorgen/html"
	"golang.org/x/net/html"
)

// Definition is an element marked with data-pgc-define, extracted into a
// standalone component.
type Definition struct {
	// ID is the data-pgc-define value.
	ID string

	// DisplayName is the optional data-pgc-define-name value.
	DisplayName string

	// TypeName is the pascalized component name used for the file and tag.
	TypeName string

	Element  *html.Node
	Schema   *Schema
	Bindings []Binding

	// indent is the whitespace preceding the element on its source line.
	indent string
}

// FindDefinitions returns every element marked as a component root, in
// document order, nested roots included. The tree is not modified.
func FindDefinitions(root *html.Node) []*Definition {
	nodes := findAll(root, func(n *html.Node) bool {
		return rzhtml.HasAttr(n, razorgen.AttrDefine)
	})

	defs := make([]*Definition, 0, len(nodes))
	for _, el := range nodes {
		id, _ := rzhtml.Attr(el, razorgen.AttrDefine)
		displayName, _ := rzhtml.Attr(el, razorgen.AttrDefineName)

		typeName := razorgen.Pascalize(displayName)
		if typeName == "" {
			typeName = razorgen.Pascalize(id)
		}

		defs = append(defs, &Definition{
			ID:          id,
			DisplayName: displayName,
			TypeName:    typeName,
			Element:     el,
			indent:      lineIndent(el),
		})
	}
	return defs
}

// Extract strips the markers from the root element, extracts its slots into
// a fresh schema and puts a reference tag in place of the element. With
// carryDefaults, single-line string defaults of the component's own slots
// become attributes of the reference tag.
func (d *Definition) Extract(carryDefaults bool) {
	d.Unmark()

	d.Schema = NewSchema()
	d.Bindings = Extract(d.Element, d.Schema)

	ref := rzhtml.NewElement(d.TypeName, d.referenceAttrs(carryDefaults))
	rzhtml.Replace(d.Element, ref, false)
}

// Unmark removes the component root markers from the element.
func (d *Definition) Unmark() {
	rzhtml.RemoveAttr(d.Element, razorgen.AttrDefine)
	rzhtml.RemoveAttr(d.Element, razorgen.AttrDefineName)
}

// referenceAttrs returns the attributes of the reference tag.
func (d *Definition) referenceAttrs(carryDefaults bool) []html.Attribute {
	if !carryDefaults {
		return nil
	}

	var attrs []html.Attribute
	seen := make(map[string]bool)
	for _, b := range d.Bindings {
		if b.Path != "" || b.Type != TypeString || seen[b.Name] {
			continue
		}
		if b.Default == "" || strings.Contains(b.Default, "\n") {
			continue
		}
		seen[b.Name] = true
		attrs = append(attrs, html.Attribute{Key: b.Name, Val: b.Default})
	}
	return attrs
}

// Template renders the component file: the element markup, a blank line and
// the @code block with the inferred parameters. Call after every definition
// of the document has been extracted so nested roots render as references.
func (d *Definition) Template() string {
	markup := normalize(d.indent + rzhtml.Render(d.Element))
	return markup + "\n\n@code {\n" + d.Schema.Render() + "}\n"
}

// lineIndent returns the whitespace between the last line break before n
// and n itself, or "" when n does not start its line.
func lineIndent(n *html.Node) string {
	prev := n.PrevSibling
	if prev == nil || prev.Type != html.TextNode {
		return ""
	}
	i := strings.LastIndexByte(prev.Data, '\n')
	if i < 0 {
		return ""
	}
	if tail := prev.Data[i+1:]; strings.TrimSpace(tail) == "" {
		return tail
	}
	return ""
}
