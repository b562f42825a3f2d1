package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
)

func exitCodeOf(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitCodeError
	require.True(t, errors.As(err, &exitErr), "unexpected error %v", err)
	return exitErr.Code
}

func TestCheck_Clean(t *testing.T) {
	setup(t)

	out, err := run("check", "clean.docx")
	require.NoError(t, err)
	assert.Contains(t, out, "clean.docx: OK (0 errors, 0 warnings)")
	assert.NotContains(t, out, "files:")
}

func TestCheck_ExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  int
	}{
		{"clean", []string{"clean.docx"}, ExitOK},
		{"warn", []string{"warn.docx"}, ExitWarn},
		{"error", []string{"error.docx", "clean.docx"}, ExitError},
		{"load failure", []string{"clean.docx", "missing.docx"}, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			_, err := run(append([]string{"check"}, tt.files...)...)
			assert.Equal(t, tt.want, exitCodeOf(t, err))
		})
	}
}

func TestCheck_TableOutput(t *testing.T) {
	setup(t)

	out, _ := run("check", "error.docx", "missing.docx")
	assert.Contains(t, out, "error.docx: ERROR (1 error, 1 warning)")
	assert.Contains(t, out, "SEVERITY")
	assert.Contains(t, out, "page-size")
	assert.Contains(t, out, "line-spacing")
	assert.Contains(t, out, "Results and discussion")
	assert.Contains(t, out, "missing.docx: ERROR (load:")
	assert.Contains(t, out, "2 files: 0 OK, 0 WARN, 2 ERROR, 1 failed")
}

func TestCheck_AnnotationReported(t *testing.T) {
	f := setup(t)
	r := f.checks.results["warn.docx"]
	r.Run.AnnotatedPath = "warn_annotated.docx"
	f.checks.results["warn.docx"] = r
	f.checks.results["broken.docx"] = domain.FileResult{
		Run:         runOf("run-broken", "broken.docx"),
		AnnotateErr: domain.ErrAnnotationWrite,
	}

	out, err := run("check", "warn.docx", "broken.docx")
	assert.Equal(t, ExitFailure, exitCodeOf(t, err))
	assert.Contains(t, out, "annotated copy: warn_annotated.docx")
	assert.Contains(t, out, "annotation failed:")
}

func TestCheck_JSON(t *testing.T) {
	setup(t)

	out, err := run("check", "--json", "error.docx", "missing.docx")
	assert.Equal(t, ExitFailure, exitCodeOf(t, err))

	var records []domain.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	assert.Equal(t, "error.docx", records[0].File)
	assert.Equal(t, "page-size", records[0].RuleID)
	assert.Nil(t, records[0].ParagraphIndex)
	require.NotNil(t, records[1].ParagraphIndex)
	assert.Equal(t, 3, *records[1].ParagraphIndex)
	assert.Equal(t, domain.LoadRuleID, records[2].RuleID)
	assert.Equal(t, domain.SeverityError, records[2].Severity)
}

func TestCheck_Options(t *testing.T) {
	f := setup(t)
	f.settings.settings.Check.Suffix = "_cfg"

	_, err := run("check", "clean.docx")
	require.NoError(t, err)
	assert.Equal(t, driving.CheckOptions{Annotate: true, Suffix: "_cfg", Record: true}, f.checks.lastOpts)

	_, err = run("check", "--no-annotate", "--no-history", "--suffix", "_x", "clean.docx")
	require.NoError(t, err)
	assert.Equal(t, driving.CheckOptions{Suffix: "_x"}, f.checks.lastOpts)
}

func TestCheck_StyleAndWorkers(t *testing.T) {
	f := setup(t)

	_, err := run("check", "-s", "journal", "-w", "3", "clean.docx")
	require.NoError(t, err)
	require.Len(t, f.factory.configs, 1)
	assert.Equal(t, driving.CheckConfig{Style: "journal", Workers: 3}, f.factory.configs[0])
}

func TestCheck_FactoryError(t *testing.T) {
	f := setup(t)
	f.factory.err = domain.ErrUnknownProfile

	_, err := run("check", "clean.docx")
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestCheck_RequiresFile(t *testing.T) {
	setup(t)
	_, err := run("check")
	assert.Error(t, err)
}

func TestCheck_NotConfigured(t *testing.T) {
	setup(t)
	Configure(Services{})

	_, err := run("check", "clean.docx")
	assert.EqualError(t, err, "check service not configured")
}

func TestExecute_ExitCode(t *testing.T) {
	setup(t)
	rootCmd.SetArgs([]string{"check", "warn.docx"})
	assert.Equal(t, ExitWarn, Execute(context.Background()))

	rootCmd.SetArgs([]string{"check", "-s", "x", "clean.docx"})
	assert.Equal(t, ExitOK, Execute(context.Background()))
}

func TestExecute_Failure(t *testing.T) {
	f := setup(t)
	f.factory.err = domain.ErrUnknownProfile
	rootCmd.SetArgs([]string{"check", "clean.docx"})
	assert.Equal(t, ExitFailure, Execute(context.Background()))
}

func TestExitCodeError(t *testing.T) {
	assert.Equal(t, "exit status 2", (&ExitCodeError{Code: 2}).Error())
	assert.Equal(t, "boom", (&ExitCodeError{Code: 3, Message: "boom"}).Error())
}
