package formatters

import (
	"fmt"

	"github.com/wuihee/c-rust-program-pairs/closure"
)

// FormatOptions contains optional parameters for formatting include graphs.
type FormatOptions struct {
	// Label is an optional title for the graph
	Label string
	// Cycles lists include cycles to highlight, each as a sorted group
	// of repository-relative paths
	Cycles [][]string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts an include graph to a formatted string. The
	// result always ends with a newline.
	Format(g closure.IncludeGraph, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "dot", "json", "mermaid"
func NewFormatter(format string) (Formatter, error) {
	switch OutputFormat(format) {
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	case OutputFormatMermaid:
		return &MermaidFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: dot, json, mermaid)", format)
	}
}

// cyclicFiles flattens cycle groups into a membership set.
func cyclicFiles(cycles [][]string) map[string]bool {
	members := make(map[string]bool)
	for _, cycle := range cycles {
		for _, file := range cycle {
			members[file] = true
		}
	}
	return members
}
