// Package razorgen converts HTML pages authored in the Pinegrow visual builder
// into Blazor Razor component templates. Editor metadata attributes mark
// component roots, editable slots and repeated groups; razorgen extracts the
// components into standalone .razor files and infers their parameter lists.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, yaml/, slog/).
package razorgen

// Editor metadata attributes written by Pinegrow.
const (
	AttrDefine     = "data-pgc-define"
	AttrDefineName = "data-pgc-define-name"
	AttrEdit       = "data-pgc-edit"
	AttrRepeat     = "data-pgc-repeat"
)

// TemplateExt is the extension of every generated template.
const TemplateExt = ".razor"

// ProjectMarker is the file that marks the root directory of a Pinegrow project.
const ProjectMarker = "pinegrow.json"
