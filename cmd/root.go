package cmd

import (
	"log/slog"
	"os"

	"github.com/wuihee/c-rust-program-pairs/cmd/graph"
	"github.com/wuihee/c-rust-program-pairs/cmd/watch"
	"github.com/wuihee/c-rust-program-pairs/config"

	"github.com/spf13/cobra"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// configPath is a persistent flag naming an optional YAML config file
var configPath string

// verbose is a persistent flag that enables debug logging
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Manage a corpus of C and Rust program pairs",
	Long: `Pairs manages a corpus of C programs and their Rust counterparts.
It validates pair metadata, downloads the source files of every pair from
their upstream repositories, resolves the full C source closure declared
in automake fragments, and renders include graphs.

Use 'pairs --help' to see all available commands, or 'pairs <command> --help'
for detailed information about a specific command.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the configuration the way every subcommand sees it:
// the --config file if given, then environment overrides, then defaults.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sbomCmd)
	rootCmd.AddCommand(graph.GraphCmd)
	rootCmd.AddCommand(watch.Cmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	// Add persistent config and logging flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
