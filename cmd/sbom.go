package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wuihee/c-rust-program-pairs/corpus"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/spf13/cobra"
)

// sbomOutDir is where the generated CycloneDX documents are written
var sbomOutDir string

// sbomCmd represents the sbom command
var sbomCmd = &cobra.Command{
	Use:   "sbom",
	Short: "Generate CycloneDX BOMs for every program pair",
	Long: `Generate one CycloneDX BOM per program pair from the metadata
directories. Each BOM names the pair as the root application and lists
the C and Rust programs as components, with their repository and
documentation URLs as external references and their source paths as
properties.

Example usage:
  pairs sbom
  pairs sbom --out dist/sbom`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		files, err := metadataFiles(append(cfg.MetadataDirs(), cfg.DemoMetadataDir))
		if err != nil {
			return err
		}

		if err := os.MkdirAll(sbomOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", sbomOutDir, err)
		}

		written := 0
		for _, path := range files {
			doc, err := corpus.Parse(path)
			if err != nil {
				slog.Warn("skipping unparseable metadata file", "path", path, "error", err)
				continue
			}

			for _, pair := range doc.Metadata().Pairs {
				out := filepath.Join(sbomOutDir, pair.ProgramName+".cdx.json")
				if err := writeBOM(out, pairBOM(pair)); err != nil {
					return err
				}
				written++
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d BOM(s) to %s\n", written, sbomOutDir)
		return nil
	},
}

// pairBOM describes one program pair as a CycloneDX BOM: the pair is the
// root application, the C and Rust programs are its components.
func pairBOM(pair corpus.ProgramPair) *cdx.BOM {
	bom := cdx.NewBOM()
	bom.Metadata = &cdx.Metadata{
		Component: &cdx.Component{
			Type:        cdx.ComponentTypeApplication,
			Name:        pair.ProgramName,
			Description: pair.ProgramDescription,
		},
	}

	components := []cdx.Component{
		programComponent(pair.ProgramName+"-c", pair.CProgram),
		programComponent(pair.ProgramName+"-rust", pair.RustProgram),
	}
	bom.Components = &components
	return bom
}

func programComponent(name string, program corpus.Program) cdx.Component {
	refs := []cdx.ExternalReference{
		{Type: cdx.ERTypeVCS, URL: program.RepositoryURL},
		{Type: cdx.ERTypeDocumentation, URL: program.DocumentationURL},
	}

	props := make([]cdx.Property, 0, len(program.SourcePaths))
	for _, path := range program.SourcePaths {
		props = append(props, cdx.Property{Name: "source_path", Value: path})
	}

	return cdx.Component{
		Type:               cdx.ComponentTypeLibrary,
		Name:               name,
		ExternalReferences: &refs,
		Properties:         &props,
	}
}

func writeBOM(path string, bom *cdx.BOM) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	encoder := cdx.NewBOMEncoder(f, cdx.BOMFileFormatJSON)
	encoder.SetPretty(true)
	return encoder.Encode(bom)
}

func init() {
	// Add out flag
	sbomCmd.Flags().StringVar(&sbomOutDir, "out", "sbom", "Directory to write CycloneDX documents into")
}
