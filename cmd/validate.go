package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wuihee/c-rust-program-pairs/corpus"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate metadata files against the schema",
	Long: `Validate metadata files against the corpus schema.

Without arguments, every file in the configured metadata directories is
checked. With arguments, only the named files are. Each file prints one
OK or FAIL line; the command fails if any file does.

Example usage:
  pairs validate
  pairs validate metadata/projects/coreutils.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if len(files) == 0 {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			files, err = metadataFiles(append(cfg.MetadataDirs(), cfg.DemoMetadataDir))
			if err != nil {
				return err
			}
		}

		failures := 0
		for _, path := range files {
			if _, err := corpus.Parse(path); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
				failures++
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", path)
		}

		if failures > 0 {
			return fmt.Errorf("%d metadata file(s) failed validation", failures)
		}
		return nil
	},
}

// metadataFiles lists the files directly under each directory, skipping
// directories that do not exist.
func metadataFiles(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
