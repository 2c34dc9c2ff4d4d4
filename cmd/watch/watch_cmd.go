package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wuihee/c-rust-program-pairs/config"

	"github.com/spf13/cobra"
)

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch metadata directories and validate files as they change",
		Long: `Watch the configured metadata directories and validate every
metadata file as it is created or edited. Validation results are logged,
making the command useful while authoring new program pairs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd)
		},
	}

	return cmd
}

func runWatch(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dirs := append(cfg.MetadataDirs(), cfg.DemoMetadataDir)

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", strings.Join(dirs, ", "))
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchMetadata(ctx, dirs, slog.Default())
}
