// Package cli implements the docstyle command line.
// Commands are package-level cobra commands registered in init();
// services are injected with Configure before Execute runs.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstyle/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// Exit codes. Per-file statuses map OK, WARN and ERROR to 0, 1 and 2.
const (
	ExitOK      = 0
	ExitWarn    = 1
	ExitError   = 2
	ExitFailure = 3
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services.
var (
	checkFactory    driving.CheckFactory
	historyService  driving.HistoryService
	styleService    driving.StyleService
	settingsService driving.SettingsService
)

// Services holds the driving ports the commands use.
type Services struct {
	Checks   driving.CheckFactory
	History  driving.HistoryService
	Styles   driving.StyleService
	Settings driving.SettingsService
}

// Configure injects the services and colours report severities like the
// annotated copies. Call it before Execute.
func Configure(s Services) {
	checkFactory = s.Checks
	historyService = s.History
	styleService = s.Styles
	settingsService = s.Settings

	outputStyles = styles.DefaultStyles()
	if s.Settings != nil {
		a := s.Settings.Get().Annotate
		outputStyles = styles.NewStyles(styles.ForAnnotation(a.ErrorColor, a.WarnColor))
	}
}

// SetVersion sets the version printed by "docstyle version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ExitCodeError carries a process exit code out of a command.
// An empty Message exits without printing anything.
type ExitCodeError struct {
	Code    int
	Message string
}

func (e *ExitCodeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docstyle",
	Short: "Check DOCX manuscripts against a house style",
	Long: `docstyle checks Word (.docx) manuscripts against a house style:
page setup, fonts, paragraph layout, title block, abstract, literature
list and typography. It prints a report per file and writes an annotated
copy with offending paragraphs coloured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(os.Stderr, "Error:", exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return ExitFailure
}

func requireChecks() error {
	if checkFactory == nil {
		return errors.New("check service not configured")
	}
	return nil
}
