package cmd

import (
	"github.com/wuihee/c-rust-program-pairs/downloader"

	"github.com/spf13/cobra"
)

// downloadDemo limits the download to the demo metadata directory
var downloadDemo bool

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the source files of every program pair",
	Long: `Download the source files of every program pair described by the
metadata directories. Each program's repository is cloned once into the
clone cache, and the declared source paths are staged under the pair's
directory, C sources on one side and Rust sources on the other.

Example usage:
  pairs download
  pairs download --demo
  pairs download --config pairs.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d := &downloader.Downloader{Config: cfg, Output: cmd.OutOrStdout()}
		return d.Run(downloadDemo)
	},
}

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Download only the demo program pairs",
	Long: `Download only the program pairs described by the demo metadata
directory. Equivalent to 'pairs download --demo'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d := &downloader.Downloader{Config: cfg, Output: cmd.OutOrStdout()}
		return d.Run(true)
	},
}

func init() {
	// Add demo flag
	downloadCmd.Flags().BoolVar(&downloadDemo, "demo", false, "Download only the demo metadata directory")
}
