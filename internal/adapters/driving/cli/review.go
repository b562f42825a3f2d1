package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

// ErrNotTerminal is returned when review runs without a terminal.
var ErrNotTerminal = errors.New("review needs an interactive terminal; use \"docstyle check\" instead")

var reviewStyle string

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var reviewCmd = &cobra.Command{
	Use:   "review FILE",
	Short: "Browse the findings for one document interactively",
	Long: `Open an interactive view of the findings for FILE. Select a finding
to see the paragraph's text and formatting. Press r to check the file
again after editing it. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewStyle, "style", "s", "", "house-style profile name or file")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if err := requireChecks(); err != nil {
		return err
	}
	if !isTerminal() {
		return ErrNotTerminal
	}
	svc, err := checkFactory.New(driving.CheckConfig{Style: reviewStyle})
	if err != nil {
		return err
	}
	app, err := tui.NewApp(&tui.Ports{Check: svc}, args[0])
	if err != nil {
		return err
	}
	return app.WithContext(cmd.Context()).Run()
}
