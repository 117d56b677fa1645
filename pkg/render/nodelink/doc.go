// Package nodelink renders graphs as node-link diagrams for previewing.
//
// # Overview
//
// Before shipping a GraphML file to another tool it helps to look at it.
// This package turns the same graph the encoder sees into Graphviz DOT and
// renders it in process, so the CLI can show a preview without a Graphviz
// installation.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels include the metadata of each element
//
// Directed graphs become a "digraph" with "->" edges; undirected graphs a
// "graph" with "--" edges. Edge labels are shown when an edge carries one.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
