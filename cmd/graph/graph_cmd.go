package graph

import (
	"fmt"

	"github.com/wuihee/c-rust-program-pairs/closure"
	"github.com/wuihee/c-rust-program-pairs/cmd/graph/formatters"

	"github.com/spf13/cobra"
)

var outputFormat string
var graphLabel string
var showCycles bool

// GraphCmd represents the graph command
var GraphCmd = &cobra.Command{
	Use:   "graph <program> <repository>",
	Short: "Render the include graph of a C program's source closure.",
	Long: `Render the include graph of a C program's source closure.

The graph starts from the sources declared for the program in the
repository's automake fragments and follows quoted #include directives
transitively. Every node is a repository-relative file path.

Examples:
  pairs graph grep ./repository_clones/c/grep           # GraphViz DOT
  pairs graph grep ./repository_clones/c/grep -f json   # adjacency lists
  pairs graph cmp ./clones/c/coreutils -f mermaid --cycles`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, repoRoot := args[0], args[1]

		resolver := &closure.Resolver{}
		g, err := resolver.BuildIncludeGraph(program, repoRoot)
		if err != nil {
			return fmt.Errorf("failed to build include graph: %w", err)
		}

		// Build a "<program> • N files" label for the visual formats
		// unless the user supplied one.
		label := graphLabel
		format := formatters.OutputFormat(outputFormat)
		if label == "" && (format == formatters.OutputFormatDOT || format == formatters.OutputFormatMermaid) {
			fileCount := len(g)
			if fileCount == 1 {
				label = fmt.Sprintf("%s • %d file", program, fileCount)
			} else {
				label = fmt.Sprintf("%s • %d files", program, fileCount)
			}
		}

		opts := formatters.FormatOptions{Label: label}
		if showCycles {
			opts.Cycles = closure.Cycles(g)
		}

		formatter, err := formatters.NewFormatter(outputFormat)
		if err != nil {
			return err
		}

		output, err := formatter.Format(g, opts)
		if err != nil {
			return fmt.Errorf("failed to format graph: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	// Add format flag
	GraphCmd.Flags().StringVarP(&outputFormat, "format", "f", formatters.OutputFormatDOT.String(),
		fmt.Sprintf("Output format (%s, %s, %s)", formatters.OutputFormatDOT, formatters.OutputFormatJSON, formatters.OutputFormatMermaid))
	// Add label flag
	GraphCmd.Flags().StringVarP(&graphLabel, "label", "l", "", "Graph title (default: program name and file count)")
	// Add cycles flag
	GraphCmd.Flags().BoolVar(&showCycles, "cycles", false, "Highlight include cycles in the output")
}
