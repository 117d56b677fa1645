// Package pkg provides the libraries behind the graphml tool.
//
// # Overview
//
// graphml writes in-memory graphs as GraphML, the XML format read by yEd,
// Gephi, Cytoscape and NetworkX. The pkg directory is organized as follows:
//
//  1. [graph] - An ordered graph with optional node and edge weights
//  2. [graphml] - The encoder: weight exporters, key registry, XML writer
//  3. [io] - Graph files (JSON, TOML) in, GraphML files out
//  4. [render/nodelink] - DOT and SVG previews of graph files
//  5. [cache] - Rendered-document caches (file, redis, null)
//  6. [errors] - Error codes shared by the CLI and the HTTP server
//  7. [observability] - Hooks for metrics and logging
//
// # Architecture
//
// The data flow through graphml:
//
//	Graph file (JSON/TOML)
//	         ↓
//	    [io] package (decode, validate, build)
//	         ↓
//	    [graph] package (nodes and edges in insertion order)
//	         ↓
//	    [graphml] package (render body, collect keys, assemble)
//	         ↓
//	    GraphML document
//
// # Quick Start
//
// Encode a graph built in code:
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/graphml/pkg/graph"
//	    "github.com/matzehuels/graphml/pkg/graphml"
//	)
//
//	g := graph.New[string, float64]()
//	a := g.AddNode("a")
//	b := g.AddNode("b")
//	g.AddEdge(a, b, 1.5)
//
//	cfg := graphml.NewConfig[string, float64]().
//	    PrettyPrint(true).
//	    ExportNodeWeightsDisplay().
//	    ExportEdgeWeightsDisplay()
//	err := cfg.Encode(os.Stdout, g)
//
// Or convert a graph file:
//
//	g, err := io.ImportFile("deps.json")
//	err = io.ExportGraphML(g, "deps.graphml", io.Options{Pretty: true, NodeWeights: "display"})
//
// # Command Line
//
// The graphml binary (cmd/graphml) wraps these packages:
//
//	graphml export deps.json -o deps.graphml --pretty --node-weights display
//	graphml preview deps.json -o deps.svg
//	graphml serve --addr :8080 --redis redis://localhost:6379/0
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/graph
// [graphml]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/graphml
// [io]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphml/pkg/observability
package pkg
