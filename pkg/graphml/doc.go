// Package graphml writes graphs as GraphML documents.
//
// # Overview
//
// GraphML is the XML interchange format understood by yEd, Gephi, Cytoscape,
// NetworkX and most other graph tools. This package renders any [Graph]
// (including *graph.Graph) into a document of the form:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
//	  <graph edgedefault="directed">
//	    <node id="n0">
//	      <data key="weight">app</data>
//	    </node>
//	    <node id="n1">
//	      <data key="weight">lib</data>
//	    </node>
//	    <edge id="e0" source="n0" target="n1" />
//	  </graph>
//	  <key id="weight" for="node" attr.name="weight" attr.type="string" />
//	</graphml>
//
// Node ids are n0..n(N-1) and edge ids e0..e(M-1), following the graph's
// iteration order.
//
// # Weights
//
// Node and edge weights become <data> elements through an [Exporter]. The
// built-in exporters are [Suppress] (the default), [Display] (fmt.Sprint),
// [Debug] (%#v) and [Custom], which lets a function emit any number of named
// attributes per element. All values are declared with attr.type="string".
//
// # Keys
//
// Every attribute name seen while writing the body is declared once per
// scope in a trailing <key> block, in the order it was first seen. A key's
// id is its attribute name; if that id is already used by the other scope
// the scope is prefixed (edge_weight), so ids stay unique. Names that are
// not valid XML name tokens, such as "" or "fill color", get a generated id
// (k0, k1, ...) and keep their text in attr.name.
//
// # Output
//
// [Config.Render] returns the document as a string and cannot fail.
// [Config.Encode] writes it to an io.Writer and returns the first write
// error. Both render the complete document in memory first, because the
// key block can only be written once the body has been walked.
//
// # Concurrency
//
// A [Config] carries no mutable state and may be used from several
// goroutines at once. The graph must not be mutated during an emission.
package graphml
