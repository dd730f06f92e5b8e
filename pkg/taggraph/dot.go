package taggraph

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the graph.
//
// If labels[i] exists, node i is labeled with it, otherwise with its
// position. Isolated nodes are included so the output shows the full node
// set. The labels slice is not modified.
func (g *Graph) ToDOT(labels []string) string {
	var buf bytes.Buffer
	buf.WriteString("graph TagGraph {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n\n")

	for v := range g.adj {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", v, label(labels, v))
	}
	if g.edges > 0 {
		buf.WriteString("\n")
	}
	for u, nbs := range g.adj {
		for _, v := range nbs {
			if u < v {
				fmt.Fprintf(&buf, "  n%d -- n%d;\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(labels []string, v int) string {
	if v < len(labels) {
		return labels[v]
	}
	return strconv.Itoa(v)
}

// RenderSVG renders the graph as an SVG document via Graphviz.
//
// Errors are returned if Graphviz cannot initialize, the generated DOT is
// rejected, or rendering fails; all are wrapped with %w.
func (g *Graph) RenderSVG(ctx context.Context, labels []string) ([]byte, error) {
	dot := g.ToDOT(labels)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
