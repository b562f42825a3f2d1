package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

var (
	historyLimit int
	historyFile  string
	historyJSON  bool
)

// shortIDLength is how much of a run ID the listing shows.
const shortIDLength = 8

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded check runs",
	Long: `List recorded check runs, most recent first.

Runs are recorded by "docstyle check" unless --no-history is given or
check.history is false. Use the short ID with "history show".`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one run with its report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [run-id]",
	Short: "Delete one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyCmd.Flags().StringVarP(&historyFile, "file", "f", "", "only runs of this file")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func requireHistory() error {
	if historyService == nil {
		return domain.ErrHistoryDisabled
	}
	return nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	var runs []domain.CheckRun
	var err error
	if historyFile != "" {
		runs, err = historyService.ListForFile(cmd.Context(), historyFile, historyLimit)
	} else {
		runs, err = historyService.List(cmd.Context(), historyLimit)
	}
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		if runs == nil {
			runs = []domain.CheckRun{}
		}
		return writeJSON(out, runs)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(outputStyles.Theme().Border)).
		Headers("ID", "CHECKED", "STATUS", "STYLE", "FILE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return outputStyles.Header
			case col == 2 && row >= 0 && row < len(runs):
				return outputStyles.Severity(runs[row].Status).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range runs {
		t.Row(
			shortID(r.ID),
			r.CheckedAt.Local().Format("2006-01-02 15:04"),
			r.Report.Summary(),
			r.StyleName,
			r.Path,
		)
	}
	fmt.Fprintln(out, t.String())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}
	run, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return historyError(args[0], err)
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		return writeJSON(out, run)
	}
	fmt.Fprintf(out, "Run:     %s\n", run.ID)
	fmt.Fprintf(out, "Checked: %s\n", run.CheckedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Style:   %s\n", run.StyleName)
	fmt.Fprintf(out, "Digest:  %s\n", run.Digest)
	fmt.Fprintln(out)
	renderResult(out, domain.FileResult{Path: run.Path, Run: run})
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}
	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		return historyError(args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", args[0])
	return nil
}

func historyError(id string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("run %s not found", id)
	case errors.Is(err, domain.ErrAmbiguousID):
		return fmt.Errorf("run id %s is ambiguous, give more characters", id)
	}
	return err
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
