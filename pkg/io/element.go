package io

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/graphml/pkg/graph"
	"github.com/matzehuels/graphml/pkg/graphml"
)

// Metadata stores arbitrary key-value pairs attached to a node or edge.
type Metadata map[string]any

// Element is the weight carried by nodes and edges of an imported graph.
// Edges have an empty ID.
type Element struct {
	ID    string
	Label string
	Meta  Metadata
}

// String returns the label, or the ID when no label is set. This is the text
// the display exporter writes.
func (e Element) String() string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}

// Graph is a graph imported from a graph file.
type Graph = graph.Graph[Element, Element]

// Exporter names accepted by [ParseExporter].
const (
	ExporterNone    = "none"
	ExporterDisplay = "display"
	ExporterDebug   = "debug"
	ExporterAttrs   = "attrs"
)

// ExporterNames lists the accepted exporter names in display order.
var ExporterNames = []string{ExporterNone, ExporterDisplay, ExporterDebug, ExporterAttrs}

// ParseExporter resolves an exporter name. An empty name means "none".
func ParseExporter(name string) (graphml.Exporter[Element], error) {
	switch name {
	case "", ExporterNone:
		return graphml.Suppress[Element](), nil
	case ExporterDisplay:
		return graphml.Display[Element](), nil
	case ExporterDebug:
		return graphml.Debug[Element](), nil
	case ExporterAttrs:
		return AttrExporter(), nil
	}
	return nil, fmt.Errorf("%w: %q (must be one of %v)", ErrUnknownExporter, name, ExporterNames)
}

// AttrExporter returns an exporter that writes every field of an element as
// its own attribute: "id" (nodes only), "label" when set, then one attribute
// per metadata key in sorted order.
func AttrExporter() graphml.Exporter[Element] {
	return graphml.Custom(func(e Element) []graphml.Attr {
		attrs := make([]graphml.Attr, 0, 2+len(e.Meta))
		if e.ID != "" {
			attrs = append(attrs, graphml.Attr{Name: "id", Value: e.ID})
		}
		if e.Label != "" {
			attrs = append(attrs, graphml.Attr{Name: "label", Value: e.Label})
		}
		for _, k := range slices.Sorted(maps.Keys(e.Meta)) {
			attrs = append(attrs, graphml.Attr{Name: k, Value: fmt.Sprint(e.Meta[k])})
		}
		return attrs
	})
}
