package formatters

import (
	"fmt"
	"strings"

	"github.com/wuihee/c-rust-program-pairs/closure"
)

// MermaidFormatter formats include graphs as Mermaid.js flowcharts.
type MermaidFormatter struct{}

// Format converts the include graph to Mermaid flowchart format.
func (f *MermaidFormatter) Format(g closure.IncludeGraph, opts FormatOptions) (string, error) {
	var sb strings.Builder

	// Add title if label provided
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs cannot contain slashes or dots, so each file
	// gets a generated ID with the path as its display text. Sorted
	// order keeps the IDs stable across runs.
	files := g.Files()
	nodeIDs := make(map[string]string, len(files))
	for i, file := range files {
		nodeIDs[file] = fmt.Sprintf("n%d", i)
	}

	for _, file := range files {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[file], file))
	}

	for _, file := range files {
		for _, target := range g[file] {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[file], nodeIDs[target]))
		}
	}

	cyclic := cyclicFiles(opts.Cycles)
	if len(cyclic) > 0 {
		sb.WriteString("    classDef cyclic fill:#f88\n")
		for _, file := range files {
			if cyclic[file] {
				sb.WriteString(fmt.Sprintf("    class %s cyclic\n", nodeIDs[file]))
			}
		}
	}

	return sb.String(), nil
}
