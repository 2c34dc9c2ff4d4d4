package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/wuihee/c-rust-program-pairs/downloader"

	"github.com/spf13/cobra"
)

// assumeYes skips the interactive confirmation prompt
var assumeYes bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete all downloaded program pairs and cached clones",
	Long: `Delete the program pairs directory and the repository clone cache.
Metadata files are never touched; a later download rebuilds everything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if !assumeYes {
			fmt.Fprintf(cmd.OutOrStdout(), "Delete %s and %s? [y/N] ", cfg.PairsDir, cfg.ClonesDir)
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		return downloader.Delete(cfg)
	},
}

func init() {
	// Add yes flag
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}
