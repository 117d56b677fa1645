package io

import (
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/graphml/pkg/graphml"
)

// Options selects how an imported graph is written as GraphML.
type Options struct {
	Pretty      bool   // indent the document
	NodeWeights string // exporter name for nodes, see ParseExporter
	EdgeWeights string // exporter name for edges, see ParseExporter
}

// Config resolves the options into a GraphML configuration.
// It fails only for unknown exporter names.
func (o Options) Config() (graphml.Config[Element, Element], error) {
	nodes, err := ParseExporter(o.NodeWeights)
	if err != nil {
		return graphml.Config[Element, Element]{}, fmt.Errorf("node weights: %w", err)
	}
	edges, err := ParseExporter(o.EdgeWeights)
	if err != nil {
		return graphml.Config[Element, Element]{}, fmt.Errorf("edge weights: %w", err)
	}
	return graphml.NewConfig[Element, Element]().
		PrettyPrint(o.Pretty).
		ExportNodeWeights(nodes).
		ExportEdgeWeights(edges), nil
}

// WriteGraphML encodes g as GraphML and writes it to w.
// Write failures of w are returned wrapped.
func WriteGraphML(g *Graph, w io.Writer, opts Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	return cfg.Encode(w, g)
}

// ExportGraphML writes g as a GraphML file at path.
// This is a convenience wrapper around [WriteGraphML] for file-based output.
func ExportGraphML(g *Graph, path string, opts Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := cfg.Encode(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
