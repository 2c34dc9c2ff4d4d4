package cmd

import (
	"fmt"

	"github.com/wuihee/c-rust-program-pairs/audit"

	"github.com/spf13/cobra"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <program> <repository>",
	Short: "Cross-check the literal include scan against a full C parse",
	Long: `Cross-check the literal include scan against a full C parse of the
program's resolved source files.

The closure resolver only honors #include directives that start a line
and use quotes. This command re-parses every resolved file with a C
grammar and reports the quoted includes that strictness leaves behind,
along with a count of skipped system includes. It never fails the run;
the report is informational.

Example usage:
  pairs audit grep ./repository_clones/c/grep`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, repoRoot := args[0], args[1]

		auditor := &audit.Auditor{}
		report, err := auditor.Audit(program, repoRoot)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Files examined:  %d\n", report.FilesExamined)
		fmt.Fprintf(out, "System includes: %d\n", report.SystemIncludes)

		if len(report.MissedIncludes) == 0 {
			fmt.Fprintln(out, "No includes were missed by the literal scan.")
			return nil
		}

		fmt.Fprintf(out, "Missed includes: %d\n", len(report.MissedIncludes))
		for _, finding := range report.MissedIncludes {
			fmt.Fprintf(out, "  %s: #include %q\n", finding.File, finding.Include)
		}
		return nil
	},
}
