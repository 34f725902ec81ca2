package main

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/contasimple/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/config"
	"github.com/MrJamesThe3rd/contasimple/internal/dashboard"
	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
	"github.com/MrJamesThe3rd/contasimple/internal/logging"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

func main() {
	var page string

	rootCmd := &cobra.Command{
		Use:   "contasimple",
		Short: "Contabilidad para el Régimen Simple",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(view.ParsePage(page))
		},
	}

	rootCmd.Flags().StringVar(&page, "page", string(view.PageDashboard),
		"page to open first (dashboard, ventas, gastos, ingresos, reportes)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(start view.Page) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	// The terminal belongs to the UI; logs go to LOG_FILE or nowhere.
	var out io.Writer = io.Discard

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "")
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			return err
		}
		defer f.Close()

		out = f
	}

	logger, err := logging.New(out, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		return err
	}

	slog.SetDefault(logger)

	bankIncomeService := bankincome.NewService(bankincome.NewStore(cfg.App.SeedData))

	svcs := view.Services{
		Sales:      sale.NewService(sale.NewStore(cfg.App.SeedData)),
		Expenses:   expense.NewService(expense.NewStore(cfg.App.SeedData)),
		BankIncome: bankIncomeService,
		Importer:   importer.NewService(bankIncomeService),
		Reports:    report.NewService(logger),
		Dashboard:  dashboard.Static(),
	}

	slog.Info("starting tui", "app", cfg.App.Name, "page", string(start), "seed", cfg.App.SeedData)

	p := tea.NewProgram(view.NewShellModel(svcs, start, cfg.UI.ToastDuration), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		return err
	}

	return nil
}
