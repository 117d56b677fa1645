// Package io reads graph files and writes them as GraphML.
//
// # Overview
//
// Graph files describe a graph in a small JSON or TOML format. They are the
// input of the graphml CLI and HTTP server, and make it easy to feed graphs
// produced by other tools into the GraphML encoder.
//
// # JSON Format
//
//	{
//	  "directed": true,
//	  "nodes": [
//	    {"id": "app", "label": "My App", "meta": {"version": "1.2.0"}},
//	    {"id": "lib"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib", "label": "imports"}
//	  ]
//	}
//
// "directed" defaults to true. Node ids must be non-empty and unique; edges
// reference node ids. Label and meta are optional on both nodes and edges.
// The TOML format uses the same field names with [[nodes]] and [[edges]]
// tables.
//
// # Weights
//
// Every node and edge becomes an [Element]. Exporters are selected by name
// with [ParseExporter]:
//
//   - none: no attributes
//   - display: one "weight" attribute, the label (or the node id)
//   - debug: one "weight" attribute, the Go representation of the element
//   - attrs: "id", "label" and every meta key as separate attributes
//
// # Import
//
// Use [ImportFile] to read a file (format picked by extension), or
// [ReadJSON] / [ReadTOML] for any io.Reader:
//
//	g, err := io.ImportFile("deps.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [ExportGraphML] to write a GraphML file, or [WriteGraphML] to write to
// any io.Writer:
//
//	err := io.ExportGraphML(g, "deps.graphml", io.Options{Pretty: true, NodeWeights: "attrs"})
//
// # Concurrency
//
// The readers return independent graphs. Writing is safe concurrently with
// other readers of the same graph, but not with modifications to it.
package io
