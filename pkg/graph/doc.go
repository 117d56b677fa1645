// Package graph provides a small ordered graph with generic node and edge
// weights.
//
// # Overview
//
// Nodes and edges are stored in insertion order and addressed by dense
// indices ([NodeIndex], [EdgeIndex]). Iteration order is therefore
// deterministic, which is what serializers such as [graphml] rely on to
// produce byte-identical output for the same graph.
//
// Weights are optional: [Graph.AddNode] and [Graph.AddEdge] attach one,
// [Graph.AddNodeUnweighted] and [Graph.AddEdgeUnweighted] do not. Iterators
// expose the weight as a pointer that is nil for unweighted elements.
//
// # Basic Usage
//
//	g := graph.New[string, string]()
//	a := g.AddNode("app")
//	b := g.AddNode("lib")
//	_, _ = g.AddEdge(a, b, "depends on")
//
//	for n := range g.Nodes() {
//	    fmt.Println(n.Index, *n.Weight)
//	}
//
// # Directedness
//
// [New] creates a directed graph and [NewUndirected] an undirected one. The
// flag only affects how consumers interpret edges; storage is identical.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Concurrent readers are fine
// as long as nobody mutates the graph at the same time.
//
// [graphml]: github.com/matzehuels/graphml/pkg/graphml
package graph
