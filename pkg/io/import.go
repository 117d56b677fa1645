package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphml/pkg/graph"
)

var (
	// ErrInvalidNodeID is returned when a node has an empty id.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned when two nodes share an id.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnsupportedFormat is returned by [ImportFile] for file extensions
	// other than .json and .toml.
	ErrUnsupportedFormat = errors.New("unsupported graph file format")

	// ErrUnknownExporter is returned by [ParseExporter] for unknown names.
	ErrUnknownExporter = errors.New("unknown exporter")

	// ErrMalformed is returned when the input cannot be decoded.
	ErrMalformed = errors.New("malformed graph file")
)

// Supported graph file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

type document struct {
	Directed *bool  `json:"directed,omitempty" toml:"directed"`
	Nodes    []node `json:"nodes" toml:"nodes"`
	Edges    []edge `json:"edges" toml:"edges"`
}

type node struct {
	ID    string   `json:"id" toml:"id"`
	Label string   `json:"label,omitempty" toml:"label"`
	Meta  Metadata `json:"meta,omitempty" toml:"meta"`
}

type edge struct {
	From  string   `json:"from" toml:"from"`
	To    string   `json:"to" toml:"to"`
	Label string   `json:"label,omitempty" toml:"label"`
	Meta  Metadata `json:"meta,omitempty" toml:"meta"`
}

// ReadJSON decodes a JSON graph from r.
//
// The input is an object with "nodes" and "edges" arrays and an optional
// "directed" flag (default true):
//
//	{
//	  "directed": true,
//	  "nodes": [{"id": "app", "label": "My App"}, {"id": "lib"}],
//	  "edges": [{"from": "app", "to": "lib", "label": "imports"}]
//	}
//
// Nodes keep their file order, so element ids in the exported GraphML
// follow the file. Every node carries an [Element] weight. An edge carries
// one only if it has a label or metadata.
//
// Numbers in metadata are kept as [json.Number], so they are exported with
// the digits written in the file.
//
// ReadJSON returns an error if the JSON is malformed, a node id is empty or
// repeated, or an edge references an unknown node. Errors name the node or
// edge at fault. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.build()
}

// ReadTOML decodes a TOML graph from r. The structure mirrors [ReadJSON]:
//
//	directed = true
//
//	[[nodes]]
//	id = "app"
//	label = "My App"
//
//	[[nodes]]
//	id = "lib"
//
//	[[edges]]
//	from = "app"
//	to = "lib"
//	label = "imports"
func ReadTOML(r io.Reader) (*Graph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return doc.build()
}

// Read decodes a graph in the given format ("json" or "toml").
func Read(r io.Reader, format string) (*Graph, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// FormatFromPath infers the graph file format from the extension of path.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ImportFile reads the graph file at path, choosing the decoder from the
// file extension (.json or .toml). Errors wrap the cause with the path.
func ImportFile(path string) (*Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func (d document) build() (*Graph, error) {
	g := graph.New[Element, Element]()
	if d.Directed != nil && !*d.Directed {
		g = graph.NewUndirected[Element, Element]()
	}

	index := make(map[string]graph.NodeIndex, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.ID == "" {
			return nil, ErrInvalidNodeID
		}
		if _, dup := index[n.ID]; dup {
			return nil, fmt.Errorf("node %s: %w", n.ID, ErrDuplicateNodeID)
		}
		index[n.ID] = g.AddNode(Element{ID: n.ID, Label: n.Label, Meta: n.Meta})
	}

	for _, e := range d.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, graph.ErrUnknownSourceNode)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, graph.ErrUnknownTargetNode)
		}
		var err error
		if e.Label == "" && len(e.Meta) == 0 {
			_, err = g.AddEdgeUnweighted(from, to)
		} else {
			_, err = g.AddEdge(from, to, Element{Label: e.Label, Meta: e.Meta})
		}
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
