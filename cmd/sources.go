package cmd

import (
	"fmt"

	"github.com/wuihee/c-rust-program-pairs/closure"
	"github.com/wuihee/c-rust-program-pairs/corpus"

	"github.com/spf13/cobra"
)

// updatePath names a metadata file whose C source paths should be refreshed
var updatePath string

// showDiff prints the metadata changes instead of writing them
var showDiff bool

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources <program> <repository>",
	Short: "Resolve the full C source closure of a program",
	Long: `Resolve the full set of C source files a program is built from.

The command reads the repository's automake fragments (Makefile.am,
local.mk, Makemodule.am) to find the program's declared sources, then
follows quoted #include directives transitively. Paths are printed
relative to the repository root, one per line.

With --update, the resolved paths replace the program's C source paths
in the given metadata file instead of being printed.

Example usage:
  pairs sources grep ./repository_clones/c/grep
  pairs sources grep ./clones/c/grep --update metadata/projects/grep.json
  pairs sources grep ./clones/c/grep --update metadata/projects/grep.json --diff`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, repoRoot := args[0], args[1]

		if showDiff && updatePath == "" {
			return fmt.Errorf("--diff requires --update")
		}

		if updatePath != "" {
			return updateMetadata(cmd, program, repoRoot, updatePath)
		}

		resolver := &closure.Resolver{}
		paths, err := resolver.Resolve(program, repoRoot)
		if err != nil {
			return err
		}

		for _, path := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

// updateMetadata replaces the program's C source paths in the metadata file
// at path with the closure resolved against repoRoot.
func updateMetadata(cmd *cobra.Command, program, repoRoot, path string) error {
	doc, err := corpus.Parse(path)
	if err != nil {
		return err
	}

	before, err := doc.Encode()
	if err != nil {
		return err
	}

	resolver := &closure.Resolver{}
	updated, err := corpus.RefreshCSourcePaths(doc, program, func(name string) ([]string, error) {
		return resolver.Resolve(name, repoRoot)
	})
	if err != nil {
		return err
	}
	if updated == 0 {
		return fmt.Errorf("no pair named %q in %s", program, path)
	}

	after, err := doc.Encode()
	if err != nil {
		return err
	}

	if showDiff {
		fmt.Fprint(cmd.OutOrStdout(), corpus.Diff(string(before), string(after)))
		return nil
	}

	if err := doc.Write(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d pair(s) in %s\n", updated, path)
	return nil
}

func init() {
	// Add update flag
	sourcesCmd.Flags().StringVar(&updatePath, "update", "", "Metadata file whose C source paths should be refreshed")
	// Add diff flag
	sourcesCmd.Flags().BoolVar(&showDiff, "diff", false, "Print the metadata changes instead of writing them")
}
