package razor

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fwojciec/razorgen"
	rzhtml "github.com/fwojciec/razorgen/html"
	"golang.org/x/net/html"
)

// Ensure Converter implements razorgen.Converter at compile time.
var _ razorgen.Converter = (*Converter)(nil)

// entityFixer undoes double escaping found in Pinegrow exports.
var entityFixer = strings.NewReplacer("&amp;apos;", "'")

// Converter converts Pinegrow documents into Razor pages and components.
type Converter struct {
	config razorgen.Config
	logger *slog.Logger
}

// NewConverter creates a new Converter. A nil logger discards events.
func NewConverter(config razorgen.Config, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{config: config, logger: logger}
}

// Convert parses the document, rewrites form idioms, exports component
// definitions and emits the page or partial template.
func (c *Converter) Convert(doc *razorgen.Document) ([]*razorgen.Artifact, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	root, err := rzhtml.Parse(rzhtml.EscapeDirectives(doc.Content))
	if err != nil {
		return nil, err
	}

	page := IsPage(root)

	RewriteForms(root)
	RewriteCheckboxes(root)
	artifacts := c.ExportDefinitions(root)

	dir := c.config.PageDirectory
	if !page {
		dir = c.config.ComponentDirectory
	}
	outPath, err := doc.OutputPath(dir)
	if err != nil {
		return nil, err
	}

	c.logger.Info("generating template", "input", doc.Path, "output", outPath)

	body := Body(root)

	if !page {
		if !c.config.TreatPartialsAsComponents {
			c.logger.Debug("skipping partial", "input", doc.Path)
			return artifacts, nil
		}
		return append(artifacts, &razorgen.Artifact{
			Path:    outPath,
			Content: body + "\n\n@code {\n\n}\n",
		}), nil
	}

	route, err := doc.Route()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	if c.config.Layout != "" {
		sb.WriteString("@layout " + c.config.Layout + "\n")
	}
	sb.WriteString(`@page "` + route + `"` + "\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n@code {\n\n}\n")

	return append(artifacts, &razorgen.Artifact{
		Path:    outPath,
		Content: sb.String(),
	}), nil
}

// ExportDefinitions extracts every component root of the tree and returns
// one artifact per component, in document order. Roots are replaced by
// reference tags; templates are rendered once all roots are extracted.
// Roots without a usable name lose their markers and stay inline, so an
// enclosing component binds their slots.
func (c *Converter) ExportDefinitions(root *html.Node) []*razorgen.Artifact {
	var defs []*Definition
	for _, d := range FindDefinitions(root) {
		if d.TypeName == "" {
			c.logger.Warn("skipping component without usable name", "id", d.ID)
			d.Unmark()
			continue
		}
		defs = append(defs, d)
	}
	for _, d := range defs {
		d.Extract(c.config.CarryDefaults)
	}

	artifacts := make([]*razorgen.Artifact, 0, len(defs))
	for _, d := range defs {
		path := filepath.Join(c.config.ComponentDirectory, d.TypeName+razorgen.TemplateExt)
		artifacts = append(artifacts, &razorgen.Artifact{
			Path:    path,
			Content: d.Template(),
		})

		for _, b := range d.Bindings {
			c.logger.Debug("bound slot",
				"component", d.TypeName,
				"path", b.Path,
				"parameter", b.Name,
				"target", b.Target,
				"type", b.Type,
			)
		}
		c.logger.Info("generated component",
			"output", path,
			"parameters", len(d.Bindings),
		)
	}
	return artifacts
}

// IsPage reports whether the tree has an <html> element. Documents without
// one are partials.
func IsPage(root *html.Node) bool {
	return findFirst(root, isHTML) != nil
}

// Body returns the normalized markup to emit for the tree: the content of
// <html><body> if present, else of <html>, else the whole tree.
func Body(root *html.Node) string {
	if htmlEl := findFirst(root, isHTML); htmlEl != nil {
		for c := htmlEl.FirstChild; c != nil; c = c.NextSibling {
			if rzhtml.IsTag(c, "body") {
				return normalize(rzhtml.InnerHTML(c))
			}
		}
		return normalize(rzhtml.InnerHTML(htmlEl))
	}
	return normalize(rzhtml.Render(root))
}

func isHTML(n *html.Node) bool {
	return rzhtml.IsTag(n, "html")
}

// normalize dedents markup, trims surrounding blank space and removes
// serialization artifacts.
func normalize(markup string) string {
	s := strings.TrimSpace(rzhtml.Dedent(markup))
	s = strings.TrimSpace(rzhtml.StripArtifacts(s))
	return entityFixer.Replace(s)
}
