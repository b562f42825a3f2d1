package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// Flags for the check command.
var (
	checkJSON       bool
	checkNoAnnotate bool
	checkNoHistory  bool
	checkSuffix     string
	checkStyle      string
	checkWorkers    int
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check documents against the house style",
	Long: `Check one or more .docx files against the house style.

For every file a report table is printed and an annotated copy is written
next to it (paper.docx becomes paper_annotated.docx). Paragraphs with
errors are coloured red, warnings orange; whole-document findings are
listed in a banner at the top. The original file is never modified.

Exit status: 0 all OK, 1 warnings, 2 errors, 3 a file could not be
loaded or annotated.

Examples:
  docstyle check paper.docx
  docstyle check --json --no-annotate submissions/*.docx
  docstyle check --style journal --suffix _review paper.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print all findings as one JSON array")
	checkCmd.Flags().BoolVar(&checkNoAnnotate, "no-annotate", false, "do not write annotated copies")
	checkCmd.Flags().BoolVar(&checkNoHistory, "no-history", false, "do not record the runs in the history")
	checkCmd.Flags().StringVar(&checkSuffix, "suffix", "", "suffix of annotated copies (default from config, _annotated)")
	checkCmd.Flags().StringVarP(&checkStyle, "style", "s", "", "house-style profile name or file")
	checkCmd.Flags().IntVarP(&checkWorkers, "workers", "w", 0, "files checked at once (default from config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := requireChecks(); err != nil {
		return err
	}
	svc, err := checkFactory.New(driving.CheckConfig{Style: checkStyle, Workers: checkWorkers})
	if err != nil {
		return err
	}

	logger.Section("check")
	results := svc.CheckAll(cmd.Context(), args, checkOptions(checkNoAnnotate, checkNoHistory, checkSuffix))

	out := cmd.OutOrStdout()
	if checkJSON {
		records := make([]domain.Record, 0, len(results))
		for _, r := range results {
			records = append(records, r.Records()...)
		}
		if err := writeJSON(out, records); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(out)
			}
			renderResult(out, r)
		}
		if len(results) > 1 {
			fmt.Fprintln(out)
			renderSummary(out, results)
		}
	}

	if code := exitCode(results); code != ExitOK {
		return &ExitCodeError{Code: code}
	}
	return nil
}

// checkOptions builds the per-call options from flags and settings.
func checkOptions(noAnnotate, noHistory bool, suffix string) driving.CheckOptions {
	if suffix == "" && settingsService != nil {
		suffix = settingsService.Get().Check.Suffix
	}
	return driving.CheckOptions{
		Annotate: !noAnnotate,
		Suffix:   suffix,
		Record:   !noHistory,
	}
}
