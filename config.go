package razorgen

// DefaultLayout is the layout directive emitted on generated pages.
const DefaultLayout = "EmptyLayout"

// Config holds the process-wide generation settings. It is read once at
// startup and never modified while a run is in progress.
type Config struct {
	// ComponentDirectory is the output root for components and partials.
	ComponentDirectory string `yaml:"componentDirectory"`

	// PageDirectory is the output root for routable pages.
	PageDirectory string `yaml:"pageDirectory"`

	// TreatPartialsAsComponents emits documents without an <html> wrapper
	// as components. When false such documents are skipped.
	TreatPartialsAsComponents bool `yaml:"treatPartialsAsComponents"`

	// Layout is the name used in the @layout directive of pages.
	// An empty layout omits the directive.
	Layout string `yaml:"layout"`

	// CarryDefaults copies single-line slot defaults onto the reference
	// tag that replaces an exported component root.
	CarryDefaults bool `yaml:"carryDefaults"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() Config {
	return Config{
		ComponentDirectory: "Components",
		PageDirectory:      "Pages",
		Layout:             DefaultLayout,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.ComponentDirectory == "" {
		return Errorf(EINVALID, "component directory required")
	}
	if c.PageDirectory == "" {
		return Errorf(EINVALID, "page directory required")
	}
	return nil
}
