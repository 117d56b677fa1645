package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	gio "github.com/matzehuels/graphml/pkg/io"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes metadata in node labels.
	// When false, only the label (or id) is shown.
	Detailed bool
}

// ToDOT converts a graph to Graphviz DOT format.
// Nodes are named n0, n1, ... in insertion order, matching the GraphML ids.
func ToDOT(g *gio.Graph, opts Options) string {
	kind, arrow := "graph", "--"
	if g.IsDirected() {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n.Weight, opts.Detailed))}
		if n.Weight == nil {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.Index, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for e := range g.Edges() {
		if e.Weight != nil && e.Weight.Label != "" {
			fmt.Fprintf(&buf, "  n%d %s n%d [label=%q];\n", e.Source, arrow, e.Target, e.Weight.Label)
			continue
		}
		fmt.Fprintf(&buf, "  n%d %s n%d;\n", e.Source, arrow, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(el *gio.Element, detailed bool) string {
	if el == nil {
		return ""
	}
	if !detailed || len(el.Meta) == 0 {
		return el.String()
	}

	parts := []string{el.String()}
	for _, k := range slices.Sorted(maps.Keys(el.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, el.Meta[k]))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
