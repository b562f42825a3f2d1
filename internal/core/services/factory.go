package services

import (
	"fmt"

	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/ports/driving"
	"github.com/custodia-labs/docstyle/internal/logger"
)

// Ensure CheckFactory implements the interface.
var _ driving.CheckFactory = (*CheckFactory)(nil)

// CheckFactory assembles check services from the settings and the
// requested house style.
type CheckFactory struct {
	loader   driven.DocumentLoader
	styles   driving.StyleService
	build    driven.RuleSetBuilder
	store    driven.ReportStore
	settings driving.SettingsService
}

// NewCheckFactory creates a factory. store may be nil to disable history.
func NewCheckFactory(
	loader driven.DocumentLoader,
	styles driving.StyleService,
	build driven.RuleSetBuilder,
	store driven.ReportStore,
	settings driving.SettingsService,
) *CheckFactory {
	if settings == nil {
		settings = NewSettingsService(nil)
	}
	return &CheckFactory{
		loader:   loader,
		styles:   styles,
		build:    build,
		store:    store,
		settings: settings,
	}
}

// New resolves cfg against the settings and builds a check service.
func (f *CheckFactory) New(cfg driving.CheckConfig) (driving.CheckService, error) {
	settings := f.settings.Get()

	style, err := f.styles.Load(cfg.Style)
	if err != nil {
		return nil, err
	}
	set, err := f.build(style)
	if err != nil {
		return nil, fmt.Errorf("building rules for %s: %w", style.Name, err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = settings.Check.Workers
	}
	var store driven.ReportStore
	if settings.Check.History {
		store = f.store
	}

	logger.Debug("style %s, %d rules enabled, %d workers",
		style.Name, len(set.ParagraphRules())+len(set.DocumentRules()), workers)
	annotator := NewAnnotator(settings.Annotate.ErrorColor, settings.Annotate.WarnColor)
	return NewCheckService(f.loader, set, annotator, store, workers), nil
}
