// Package main wires the docstyle adapters and runs the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/docstyle/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docstyle/internal/adapters/driven/docx"
	"github.com/custodia-labs/docstyle/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docstyle/internal/adapters/driven/style"
	"github.com/custodia-labs/docstyle/internal/adapters/driving/cli"
	"github.com/custodia-labs/docstyle/internal/core/domain"
	"github.com/custodia-labs/docstyle/internal/core/ports/driven"
	"github.com/custodia-labs/docstyle/internal/core/services"
	"github.com/custodia-labs/docstyle/internal/logger"
	"github.com/custodia-labs/docstyle/internal/rules"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var settings *services.SettingsService
	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		settings = services.NewSettingsService(nil)
	} else {
		settings = services.NewSettingsService(configStore)
	}

	styleLoader, err := style.NewLoader("")
	if err != nil {
		logger.Warn("style directory unavailable: %v", err)
		return cli.ExitFailure
	}
	styles := services.NewStyleService(styleLoader, settings)

	var reports driven.ReportStore
	if settings.Get().Check.History {
		store, err := sqlite.NewStore("")
		if err != nil {
			logger.Warn("history disabled: %v", err)
		} else {
			defer func() { _ = store.Close() }()
			reports = store.ReportStore()
		}
	}

	checks := services.NewCheckFactory(docx.NewLoader(0), styles, buildRules, reports, settings)

	deps := cli.Services{
		Checks:   checks,
		Styles:   styles,
		Settings: settings,
	}
	if reports != nil {
		deps.History = services.NewHistoryService(reports)
	}
	cli.Configure(deps)
	cli.SetVersion(version)

	return cli.Execute(ctx)
}

func buildRules(hs domain.HouseStyle) (driven.RuleSet, error) {
	set, err := rules.New(hs)
	if err != nil {
		return nil, err
	}
	return set, nil
}
