package graphml

// Config selects what an emission exports and how it is formatted.
//
// Config is an immutable value: every setter returns an updated copy and
// leaves the receiver untouched, so a Config can be shared between
// goroutines and reused for any number of graphs. The zero value is the
// default configuration (compact output, weights suppressed).
//
//	cfg := graphml.NewConfig[string, string]().
//	    PrettyPrint(true).
//	    ExportNodeWeightsDisplay()
//	doc := cfg.Render(g)
type Config[N, E any] struct {
	pretty bool
	nodes  Exporter[N]
	edges  Exporter[E]
}

// NewConfig returns the default configuration: no pretty printing, node and
// edge weights suppressed.
func NewConfig[N, E any]() Config[N, E] {
	return Config[N, E]{}
}

// PrettyPrint toggles newline and indentation between tags.
func (c Config[N, E]) PrettyPrint(on bool) Config[N, E] {
	c.pretty = on
	return c
}

// ExportNodeWeights sets the node exporter. A nil exporter suppresses node
// attributes.
func (c Config[N, E]) ExportNodeWeights(e Exporter[N]) Config[N, E] {
	c.nodes = e
	return c
}

// ExportEdgeWeights sets the edge exporter. A nil exporter suppresses edge
// attributes.
func (c Config[N, E]) ExportEdgeWeights(e Exporter[E]) Config[N, E] {
	c.edges = e
	return c
}

// ExportNodeWeightsDisplay is shorthand for ExportNodeWeights(Display[N]()).
func (c Config[N, E]) ExportNodeWeightsDisplay() Config[N, E] {
	return c.ExportNodeWeights(Display[N]())
}

// ExportNodeWeightsDebug is shorthand for ExportNodeWeights(Debug[N]()).
func (c Config[N, E]) ExportNodeWeightsDebug() Config[N, E] {
	return c.ExportNodeWeights(Debug[N]())
}

// ExportEdgeWeightsDisplay is shorthand for ExportEdgeWeights(Display[E]()).
func (c Config[N, E]) ExportEdgeWeightsDisplay() Config[N, E] {
	return c.ExportEdgeWeights(Display[E]())
}

// ExportEdgeWeightsDebug is shorthand for ExportEdgeWeights(Debug[E]()).
func (c Config[N, E]) ExportEdgeWeightsDebug() Config[N, E] {
	return c.ExportEdgeWeights(Debug[E]())
}

// IsPretty reports whether pretty printing is enabled.
func (c Config[N, E]) IsPretty() bool { return c.pretty }
