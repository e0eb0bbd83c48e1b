package razor

import (
	"fmt"
	"strings"
)

// Parameter types declared for slots.
const (
	TypeString   = "string"
	TypeFragment = "RenderFragment"
)

// Parameter is one declared property of a schema.
type Parameter struct {
	Name string
	Type string
}

// Group is a repeat group declared in a schema: a list property of
// <Name>Item records whose members live in the nested schema.
type Group struct {
	Name   string
	Schema *Schema
}

// ItemType returns the name of the record type of the group.
func (g *Group) ItemType() string {
	return g.Name + "Item"
}

// declaration is either a parameter or a group.
type declaration struct {
	param *Parameter
	group *Group
}

// Schema accumulates the declarations of one @code block, or of one nested
// record type, in discovery order. It is append-only: duplicates are kept
// and nothing is reordered. Nested schemas may keep growing after they have
// been declared; text is produced only by Render.
type Schema struct {
	nested       bool
	declarations []declaration
}

// NewSchema returns an empty component schema.
func NewSchema() *Schema {
	return &Schema{}
}

// AddParameter appends a parameter declaration.
func (s *Schema) AddParameter(name, typ string) {
	s.declarations = append(s.declarations, declaration{param: &Parameter{Name: name, Type: typ}})
}

// AddGroup appends a repeat group declaration and returns its nested schema.
func (s *Schema) AddGroup(name string) *Schema {
	nested := &Schema{nested: true}
	s.declarations = append(s.declarations, declaration{group: &Group{Name: name, Schema: nested}})
	return nested
}

// Len returns the number of declarations, not counting nested ones.
func (s *Schema) Len() int {
	return len(s.declarations)
}

// Parameters returns the parameters declared directly in s.
func (s *Schema) Parameters() []Parameter {
	var params []Parameter
	for _, d := range s.declarations {
		if d.param != nil {
			params = append(params, *d.param)
		}
	}
	return params
}

// Groups returns the repeat groups declared directly in s.
func (s *Schema) Groups() []*Group {
	var groups []*Group
	for _, d := range s.declarations {
		if d.group != nil {
			groups = append(groups, d.group)
		}
	}
	return groups
}

// Render returns the body of the @code block, one declaration per
// paragraph, indented by four spaces. Component parameters carry the
// [Parameter] attribute; members of nested record types do not.
func (s *Schema) Render() string {
	var sb strings.Builder
	s.render(&sb, 1)
	return sb.String()
}

func (s *Schema) render(sb *strings.Builder, depth int) {
	pad := strings.Repeat("    ", depth)
	for i, d := range s.declarations {
		if i > 0 {
			sb.WriteString("\n")
		}
		if !s.nested {
			sb.WriteString(pad + "[Parameter]\n")
		}

		if d.param != nil {
			fmt.Fprintf(sb, "%spublic %s %s { get; set; }\n", pad, d.param.Type, d.param.Name)
			continue
		}

		g := d.group
		fmt.Fprintf(sb, "%spublic List<%s> %s { get; set; }\n", pad, g.ItemType(), g.Name)
		sb.WriteString("\n")
		fmt.Fprintf(sb, "%spublic class %s\n%s{\n", pad, g.ItemType(), pad)
		g.Schema.render(sb, depth+1)
		sb.WriteString(pad + "}\n")
	}
}
