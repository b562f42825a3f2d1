package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

var (
	rulesJSON  bool
	rulesStyle string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the house-style rules",
	Long: `List every rule in report order with its scope and whether the
active house style enables it. Disable rules with disabled_rules in a
style profile.`,
	Args: cobra.NoArgs,
	RunE: runRulesList,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Describe one rule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRulesShow,
}

func init() {
	rulesCmd.PersistentFlags().BoolVar(&rulesJSON, "json", false, "output as JSON")
	rulesCmd.PersistentFlags().StringVarP(&rulesStyle, "style", "s", "", "house-style profile name or file")
	rulesCmd.AddCommand(rulesShowCmd)
	rootCmd.AddCommand(rulesCmd)
}

func loadRules() (driving.CheckService, error) {
	if err := requireChecks(); err != nil {
		return nil, err
	}
	return checkFactory.New(driving.CheckConfig{Style: rulesStyle})
}

func runRulesList(cmd *cobra.Command, _ []string) error {
	svc, err := loadRules()
	if err != nil {
		return err
	}
	rules := svc.Rules()
	out := cmd.OutOrStdout()
	if rulesJSON {
		return writeJSON(out, rules)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(outputStyles.Theme().Border)).
		Headers("RULE", "SCOPE", "ENABLED", "DESCRIPTION").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return outputStyles.Header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	enabled := 0
	for _, r := range rules {
		mark := "no"
		if r.Enabled {
			mark = "yes"
			enabled++
		}
		t.Row(r.ID, string(r.Scope), mark, r.Description)
	}

	fmt.Fprintf(out, "Style: %s\n", svc.Style().Name)
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "%d rules, %d enabled\n", len(rules), enabled)
	return nil
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	svc, err := loadRules()
	if err != nil {
		return err
	}
	id := strings.TrimSpace(args[0])
	for _, r := range svc.Rules() {
		if r.ID != id {
			continue
		}
		out := cmd.OutOrStdout()
		if rulesJSON {
			return writeJSON(out, r)
		}
		fmt.Fprintf(out, "ID:          %s\n", r.ID)
		fmt.Fprintf(out, "Scope:       %s\n", r.Scope)
		fmt.Fprintf(out, "Enabled:     %t\n", r.Enabled)
		fmt.Fprintf(out, "Description: %s\n", r.Description)
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownRule, id)
}
