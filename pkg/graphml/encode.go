package graphml

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/matzehuels/graphml/pkg/graph"
)

// Namespace is the GraphML XML namespace written on the root element.
const Namespace = "http://graphml.graphdrawing.org/xmlns"

// FormatRevision identifies the encoder's output. It is bumped whenever the
// same graph and Config start producing different bytes, so stored
// documents keyed on it are not served across the change.
const FormatRevision = 2

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// Graph is the read-only view of a graph the encoder walks.
//
// Nodes and Edges must yield elements in a stable order; element ids are
// assigned from that order. Every Source and Target of an edge must be the
// Index of a node yielded by Nodes. *graph.Graph satisfies this interface.
type Graph[N, E any] interface {
	IsDirected() bool
	Nodes() iter.Seq[graph.Node[N]]
	Edges() iter.Seq[graph.Edge[E]]
}

// document is a fully rendered emission split at the points where the sink
// receives it.
type document struct {
	head []byte // XML declaration and <graphml> start tag
	body []byte // <graph>...</graph>
	tail []byte // <key> declarations and </graphml>
}

// Render returns the GraphML document for g. It cannot fail.
func (c Config[N, E]) Render(g Graph[N, E]) string {
	doc := c.render(g)
	var buf bytes.Buffer
	buf.Grow(len(doc.head) + len(doc.body) + len(doc.tail))
	buf.Write(doc.head)
	buf.Write(doc.body)
	buf.Write(doc.tail)
	return buf.String()
}

// Encode writes the GraphML document for g to w.
//
// The whole document is rendered in memory before the first write, because
// the trailing <key> declarations depend on every element of the body.
// Memory use is therefore proportional to the body size; only the transfer
// to w is incremental. The first write error aborts the emission and is
// returned wrapped; w is left partially written.
func (c Config[N, E]) Encode(w io.Writer, g Graph[N, E]) error {
	doc := c.render(g)
	for _, part := range [][]byte{doc.head, doc.body, doc.tail} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("write graphml: %w", err)
		}
	}
	return nil
}

func (c Config[N, E]) render(g Graph[N, E]) document {
	keys := newKeyRegistry()
	body := c.writeBody(g, keys)

	var head bytes.Buffer
	hw := newXMLWriter(&head, c.pretty, 0)
	hw.raw(xmlHeader)
	hw.start("graphml", xmlAttr{"xmlns", Namespace})

	// The tail resumes inside <graphml>, which already holds <graph>.
	var tail bytes.Buffer
	tw := newXMLWriter(&tail, c.pretty, 1)
	tw.children = []bool{true}
	for _, k := range keys.declarations() {
		tw.empty("key",
			xmlAttr{"id", k.ID},
			xmlAttr{"for", k.For.String()},
			xmlAttr{"attr.name", k.Name},
			xmlAttr{"attr.type", attrType},
		)
	}
	tw.end("graphml")

	return document{head: head.Bytes(), body: body, tail: tail.Bytes()}
}

// writeBody renders <graph>...</graph>, registering every attribute key it
// references.
func (c Config[N, E]) writeBody(g Graph[N, E], keys *keyRegistry) []byte {
	var buf bytes.Buffer
	w := newXMLWriter(&buf, c.pretty, 1)

	edgeDefault := "undirected"
	if g.IsDirected() {
		edgeDefault = "directed"
	}
	w.start("graph", xmlAttr{"edgedefault", edgeDefault})

	nodeIDs := make(map[graph.NodeIndex]string)
	exportNodes := !isSuppressed(c.nodes)
	i := 0
	for n := range g.Nodes() {
		id := "n" + strconv.Itoa(i)
		i++
		nodeIDs[n.Index] = id

		var attrs []Attr
		if exportNodes && n.Weight != nil {
			attrs = c.nodes.Export(*n.Weight)
		}
		writeElement(w, keys, "node", ScopeNode, attrs, xmlAttr{"id", id})
	}

	exportEdges := !isSuppressed(c.edges)
	i = 0
	for e := range g.Edges() {
		id := "e" + strconv.Itoa(i)
		i++

		var attrs []Attr
		if exportEdges && e.Weight != nil {
			attrs = c.edges.Export(*e.Weight)
		}
		writeElement(w, keys, "edge", ScopeEdge, attrs,
			xmlAttr{"id", id},
			xmlAttr{"source", endpoint(nodeIDs, e.Index, e.Source)},
			xmlAttr{"target", endpoint(nodeIDs, e.Index, e.Target)},
		)
	}

	w.end("graph")
	return buf.Bytes()
}

// writeElement writes a node or edge, self-closed when it has no attributes.
func writeElement(w *xmlWriter, keys *keyRegistry, name string, scope Scope, attrs []Attr, tagAttrs ...xmlAttr) {
	if len(attrs) == 0 {
		w.empty(name, tagAttrs...)
		return
	}
	w.start(name, tagAttrs...)
	for _, a := range attrs {
		w.text("data", a.Value, xmlAttr{"key", keys.register(scope, a.Name)})
	}
	w.end(name)
}

func endpoint(ids map[graph.NodeIndex]string, edge graph.EdgeIndex, node graph.NodeIndex) string {
	id, ok := ids[node]
	if !ok {
		panic(fmt.Sprintf("graphml: edge %d references node %d not yielded by Nodes", edge, node))
	}
	return id
}
