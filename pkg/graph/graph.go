package graph

import (
	"errors"
	"iter"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the source
	// index does not refer to a node of the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the target
	// index does not refer to a node of the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// NodeIndex identifies a node. Indices are assigned densely from zero in
// insertion order and never reused.
type NodeIndex int

// EdgeIndex identifies an edge. Indices are assigned densely from zero in
// insertion order and never reused.
type EdgeIndex int

// Node is a node as yielded by [Graph.Nodes].
// Weight is nil when the node was added without one.
type Node[W any] struct {
	Index  NodeIndex
	Weight *W
}

// Edge is an edge as yielded by [Graph.Edges].
// Weight is nil when the edge was added without one.
type Edge[W any] struct {
	Index  EdgeIndex
	Source NodeIndex
	Target NodeIndex
	Weight *W
}

type nodeEntry[N any] struct {
	weight    N
	hasWeight bool
}

type edgeEntry[E any] struct {
	source, target NodeIndex
	weight         E
	hasWeight      bool
}

// Graph is an ordered graph with node weights of type N and edge weights of
// type E.
//
// The zero value is an empty directed graph ready for use.
// Graph is not safe for concurrent use without external synchronization.
type Graph[N, E any] struct {
	undirected bool
	nodes      []nodeEntry[N]
	edges      []edgeEntry[E]
}

// New creates an empty directed graph.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// NewUndirected creates an empty undirected graph.
func NewUndirected[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{undirected: true}
}

// IsDirected reports whether edges are directed.
func (g *Graph[N, E]) IsDirected() bool { return !g.undirected }

// AddNode appends a node carrying weight w and returns its index.
func (g *Graph[N, E]) AddNode(w N) NodeIndex {
	g.nodes = append(g.nodes, nodeEntry[N]{weight: w, hasWeight: true})
	return NodeIndex(len(g.nodes) - 1)
}

// AddNodeUnweighted appends a node without a weight and returns its index.
func (g *Graph[N, E]) AddNodeUnweighted() NodeIndex {
	g.nodes = append(g.nodes, nodeEntry[N]{})
	return NodeIndex(len(g.nodes) - 1)
}

// AddEdge appends an edge from a to b carrying weight w.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint does
// not exist. Parallel edges and self-loops are allowed.
func (g *Graph[N, E]) AddEdge(a, b NodeIndex, w E) (EdgeIndex, error) {
	return g.addEdge(edgeEntry[E]{source: a, target: b, weight: w, hasWeight: true})
}

// AddEdgeUnweighted appends an edge from a to b without a weight.
// It fails under the same conditions as [Graph.AddEdge].
func (g *Graph[N, E]) AddEdgeUnweighted(a, b NodeIndex) (EdgeIndex, error) {
	return g.addEdge(edgeEntry[E]{source: a, target: b})
}

func (g *Graph[N, E]) addEdge(e edgeEntry[E]) (EdgeIndex, error) {
	if !g.contains(e.source) {
		return -1, ErrUnknownSourceNode
	}
	if !g.contains(e.target) {
		return -1, ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	return EdgeIndex(len(g.edges) - 1), nil
}

func (g *Graph[N, E]) contains(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// NodeWeight returns the weight of node i and true, or the zero value and
// false if the node does not exist or has no weight.
func (g *Graph[N, E]) NodeWeight(i NodeIndex) (N, bool) {
	if !g.contains(i) || !g.nodes[i].hasWeight {
		var zero N
		return zero, false
	}
	return g.nodes[i].weight, true
}

// EdgeWeight returns the weight of edge i and true, or the zero value and
// false if the edge does not exist or has no weight.
func (g *Graph[N, E]) EdgeWeight(i EdgeIndex) (E, bool) {
	if i < 0 || int(i) >= len(g.edges) || !g.edges[i].hasWeight {
		var zero E
		return zero, false
	}
	return g.edges[i].weight, true
}

// EdgeEndpoints returns the source and target of edge i.
// ok is false if the edge does not exist.
func (g *Graph[N, E]) EdgeEndpoints(i EdgeIndex) (source, target NodeIndex, ok bool) {
	if i < 0 || int(i) >= len(g.edges) {
		return -1, -1, false
	}
	e := g.edges[i]
	return e.source, e.target, true
}

// Nodes iterates over all nodes in insertion order.
// The yielded Weight pointers refer to the graph's storage and must be
// treated as read-only; they stay valid until the next AddNode call.
func (g *Graph[N, E]) Nodes() iter.Seq[Node[N]] {
	return func(yield func(Node[N]) bool) {
		for i := range g.nodes {
			n := Node[N]{Index: NodeIndex(i)}
			if g.nodes[i].hasWeight {
				n.Weight = &g.nodes[i].weight
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Edges iterates over all edges in insertion order.
// The yielded Weight pointers follow the same rules as for [Graph.Nodes].
func (g *Graph[N, E]) Edges() iter.Seq[Edge[E]] {
	return func(yield func(Edge[E]) bool) {
		for i := range g.edges {
			e := Edge[E]{Index: EdgeIndex(i), Source: g.edges[i].source, Target: g.edges[i].target}
			if g.edges[i].hasWeight {
				e.Weight = &g.edges[i].weight
			}
			if !yield(e) {
				return
			}
		}
	}
}
