package razorgen

// Converter turns one source document into generated templates.
type Converter interface {
	// Convert transforms the document and returns the artifacts to persist.
	// A document that yields no template (e.g., a skipped partial) returns
	// an empty slice. Unparsable content returns an EINVALID error.
	Convert(doc *Document) ([]*Artifact, error)
}
