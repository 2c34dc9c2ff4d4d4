package formatters

import (
	"fmt"
	"strings"

	"github.com/wuihee/c-rust-program-pairs/closure"
)

// DOTFormatter formats include graphs as Graphviz DOT.
type DOTFormatter struct{}

// Format converts the include graph to Graphviz DOT format. Files that
// belong to an include cycle are filled light coral.
func (f *DOTFormatter) Format(g closure.IncludeGraph, opts FormatOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph includes {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	// Add label if provided
	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=\"%s\";\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	cyclic := cyclicFiles(opts.Cycles)

	// Define nodes first so styling stays separate from edges.
	for _, file := range g.Files() {
		if cyclic[file] {
			sb.WriteString(fmt.Sprintf("  \"%s\" [style=filled, fillcolor=lightcoral];\n", file))
			continue
		}
		sb.WriteString(fmt.Sprintf("  \"%s\";\n", file))
	}
	sb.WriteString("\n")

	for _, file := range g.Files() {
		for _, target := range g[file] {
			sb.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", file, target))
		}
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}
