package razor

import (
	"slices"
	"strings"

	"github.com/fwojciec/razorgen"
	rzhtml "github.com/fwojciec/razorgen/html"
	"golang.org/x/net/html"
)

// Slot targets with special meaning in data-pgc-edit.
const (
	TargetContent   = "content"
	TargetNoContent = "no_content"
)

// Binding records one slot rewritten to reference a parameter.
type Binding struct {
	// Path is the concatenated repeat group names enclosing the slot.
	// Slots of the component itself have an empty path.
	Path string

	// Name is the parameter identifier.
	Name string

	// Target is TargetContent or the name of the bound attribute.
	Target string

	// Type is TypeString or TypeFragment.
	Type string

	// Default is the slot value before extraction: the attribute value,
	// the decoded text, or the inner markup of a fragment.
	Default string
}

// Edit is a parsed data-pgc-edit value.
type Edit struct {
	Name    string
	Targets []string
}

// ParseEdit parses a data-pgc-edit value of the form name[target1,target2].
// Targets are trimmed and the no_content marker is dropped: content is bound
// only when listed explicitly. It reports false for malformed values.
func ParseEdit(value string) (Edit, bool) {
	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == '[' || r == ']'
	})
	if len(parts) != 2 {
		return Edit{}, false
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return Edit{}, false
	}

	var targets []string
	for _, target := range strings.Split(parts[1], ",") {
		target = strings.TrimSpace(target)
		if target == "" || target == TargetNoContent {
			continue
		}
		targets = append(targets, target)
	}
	return Edit{Name: name, Targets: targets}, true
}

// scope is the destination of the bindings found while walking a subtree.
type scope struct {
	path   string
	schema *Schema
}

// Extract rewrites the editable slots of el and its descendants to reference
// parameters and declares those parameters in schema. Children carrying
// data-pgc-repeat declare their slots in a nested schema, one per distinct
// group name among the children of the same element. Descendants marked as
// component roots are skipped; they are extracted on their own.
//
// Bindings are returned in discovery order. Name collisions are not detected.
func Extract(el *html.Node, schema *Schema) []Binding {
	var bindings []Binding
	extract(el, scope{schema: schema}, &bindings)
	return bindings
}

func extract(el *html.Node, sc scope, bindings *[]Binding) {
	if value, ok := rzhtml.Attr(el, razorgen.AttrEdit); ok {
		if edit, ok := ParseEdit(value); ok {
			for _, b := range bind(el, edit) {
				b.Path = sc.path
				sc.schema.AddParameter(b.Name, b.Type)
				*bindings = append(*bindings, b)
			}
		}
	}

	// Repeat groups opened by the children of el. Not inherited by descendants.
	groups := make(map[string]scope)

	for _, child := range rzhtml.Children(el) {
		if child.Type != html.ElementNode || rzhtml.HasAttr(child, razorgen.AttrDefine) {
			continue
		}

		name, _ := rzhtml.Attr(child, razorgen.AttrRepeat)
		if name == "" {
			extract(child, sc, bindings)
			continue
		}

		group, ok := groups[name]
		if !ok {
			ident := razorgen.Pascalize(name)
			group = scope{
				path:   sc.path + ident,
				schema: sc.schema.AddGroup(ident),
			}
			groups[name] = group
		}
		extract(child, group, bindings)
	}
}

// bind rewrites the targets of edit on el and returns one binding per target.
func bind(el *html.Node, edit Edit) []Binding {
	hasContent := slices.Contains(edit.Targets, TargetContent)

	var bindings []Binding
	for _, target := range edit.Targets {
		if target == TargetContent {
			b := Binding{
				Name:   razorgen.Pascalize(edit.Name),
				Target: TargetContent,
				Type:   TypeString,
			}
			if rzhtml.HasElementChildren(el) {
				b.Type = TypeFragment
				b.Default = rzhtml.InnerHTML(el)
			} else {
				b.Default = textContent(el)
			}
			rzhtml.SetInnerText(el, "@"+b.Name)
			bindings = append(bindings, b)
			continue
		}

		name := edit.Name
		if hasContent {
			name += " " + target
		}
		b := Binding{
			Name:   razorgen.Pascalize(name),
			Target: target,
			Type:   TypeString,
		}
		b.Default, _ = rzhtml.Attr(el, target)
		rzhtml.SetAttr(el, target, "@"+b.Name)
		bindings = append(bindings, b)
	}
	return bindings
}

// textContent concatenates the text children of n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
