package mock

import "github.com/fwojciec/razorgen"

var _ razorgen.Converter = (*Converter)(nil)

// Converter is a mock implementation of razorgen.Converter.
type Converter struct {
	ConvertFn func(doc *razorgen.Document) ([]*razorgen.Artifact, error)
}

func (c *Converter) Convert(doc *razorgen.Document) ([]*razorgen.Artifact, error) {
	return c.ConvertFn(doc)
}
