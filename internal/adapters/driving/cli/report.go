package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docstyle/internal/core/domain"
)

var outputStyles = styles.DefaultStyles()

// contextWidth bounds the context column of report tables.
const contextWidth = 40

// renderResult prints one file's report as a table.
func renderResult(w io.Writer, r domain.FileResult) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: %s %s\n", r.Path,
			outputStyles.Error.Render(string(domain.SeverityError)),
			fmt.Sprintf("(%s: %v)", domain.LoadRuleID, r.Err))
		return
	}

	report := r.Run.Report
	status := report.OverallStatus()
	fmt.Fprintf(w, "%s: %s\n", r.Path,
		outputStyles.Severity(status).Render(report.Summary()))

	if len(report.Findings) > 0 {
		fmt.Fprintln(w, renderTable(report))
	}
	if r.Run.AnnotatedPath != "" {
		fmt.Fprintf(w, "%s %s\n", outputStyles.Muted.Render("annotated copy:"), r.Run.AnnotatedPath)
	}
	if r.AnnotateErr != nil {
		fmt.Fprintf(w, "%s %v\n", outputStyles.Error.Render("annotation failed:"), r.AnnotateErr)
	}
}

// renderTable lays out the findings of a report.
func renderTable(report *domain.Report) string {
	rows := report.Table()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(outputStyles.Theme().Border)).
		Headers("SEVERITY", "RULE", "PARA", "MESSAGE", "CONTEXT").
		StyleFunc(func(row, col int) lipgloss.Style {
			cell := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return cell.Bold(true).Foreground(outputStyles.Theme().Secondary)
			case col == 0 && row >= 0 && row < len(rows):
				return outputStyles.Severity(rows[row].Severity).Padding(0, 1)
			}
			return cell
		})
	for _, r := range rows {
		t.Row(
			string(r.Severity),
			r.RuleID,
			r.Paragraph,
			r.Message,
			truncate(strings.ReplaceAll(r.Context, "\n", " "), contextWidth),
		)
	}
	return t.String()
}

// renderSummary prints the per-status totals of a batch.
func renderSummary(w io.Writer, results []domain.FileResult) {
	var ok, warn, errs, failed int
	for _, r := range results {
		if r.Failed() {
			failed++
		}
		switch r.Status() {
		case domain.SeverityOK:
			ok++
		case domain.SeverityWarn:
			warn++
		case domain.SeverityError:
			errs++
		}
	}
	line := fmt.Sprintf("%d files: %d OK, %d WARN, %d ERROR", len(results), ok, warn, errs)
	if failed > 0 {
		line += fmt.Sprintf(", %d failed", failed)
	}
	fmt.Fprintln(w, outputStyles.Subtitle.Render(line))
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// exitCode maps a batch to the process exit status: the most serious
// file status, or ExitFailure when any file failed to load or annotate.
func exitCode(results []domain.FileResult) int {
	worst := domain.SeverityOK
	for _, r := range results {
		if r.Failed() {
			return ExitFailure
		}
		worst = worst.Max(r.Status())
	}
	switch worst {
	case domain.SeverityError:
		return ExitError
	case domain.SeverityWarn:
		return ExitWarn
	default:
		return ExitOK
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
