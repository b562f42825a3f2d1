package driving

import (
	"context"

	"github.com/custodia-labs/docstyle/internal/core/domain"
)

// CheckOptions controls one check invocation.
type CheckOptions struct {
	// Annotate writes an annotated sibling copy when true.
	Annotate bool

	// Suffix is inserted before the extension of the annotated copy.
	Suffix string

	// Record stores the run in the history store when one is configured.
	Record bool
}

// CheckService runs the load, evaluate and annotate pipeline.
type CheckService interface {
	// Check processes one file. Failures are reported on the result.
	Check(ctx context.Context, path string, opts CheckOptions) domain.FileResult

	// CheckAll processes files concurrently. Results keep input order.
	CheckAll(ctx context.Context, paths []string, opts CheckOptions) []domain.FileResult

	// Inspect loads a file and returns the document with its report
	// without annotating or recording it.
	Inspect(ctx context.Context, path string) (*domain.Document, *domain.Report, error)

	// Rules lists every registered rule with its enabled state.
	Rules() []domain.RuleInfo

	// Style returns the active house style.
	Style() domain.HouseStyle
}

// HistoryService reads recorded check runs.
type HistoryService interface {
	// List returns recent runs, most recent first.
	List(ctx context.Context, limit int) ([]domain.CheckRun, error)

	// ListForFile returns runs of one file, most recent first.
	ListForFile(ctx context.Context, path string, limit int) ([]domain.CheckRun, error)

	// Get returns one run by ID or unique ID prefix.
	Get(ctx context.Context, id string) (*domain.CheckRun, error)

	// Delete removes one run.
	Delete(ctx context.Context, id string) error
}

// CheckConfig selects the house style and concurrency of a check service.
// Zero values fall back to the configured settings.
type CheckConfig struct {
	// Style is a profile name or a path to a profile file.
	Style string

	// Workers bounds how many files are checked at once.
	Workers int
}

// CheckFactory builds check services for one invocation.
type CheckFactory interface {
	// New resolves the house style and returns a ready check service.
	New(cfg CheckConfig) (CheckService, error)
}
