package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/contasimple/internal/bankincome"
	"github.com/MrJamesThe3rd/contasimple/internal/config"
	"github.com/MrJamesThe3rd/contasimple/internal/expense"
	csHttp "github.com/MrJamesThe3rd/contasimple/internal/http"
	bankIncomeHandler "github.com/MrJamesThe3rd/contasimple/internal/http/bankincome"
	dashboardHandler "github.com/MrJamesThe3rd/contasimple/internal/http/dashboard"
	expenseHandler "github.com/MrJamesThe3rd/contasimple/internal/http/expense"
	reportHandler "github.com/MrJamesThe3rd/contasimple/internal/http/report"
	saleHandler "github.com/MrJamesThe3rd/contasimple/internal/http/sale"
	"github.com/MrJamesThe3rd/contasimple/internal/importer"
	"github.com/MrJamesThe3rd/contasimple/internal/logging"
	"github.com/MrJamesThe3rd/contasimple/internal/report"
	"github.com/MrJamesThe3rd/contasimple/internal/sale"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)

	var (
		saleService       = sale.NewService(sale.NewStore(cfg.App.SeedData))
		expenseService    = expense.NewService(expense.NewStore(cfg.App.SeedData))
		bankIncomeService = bankincome.NewService(bankincome.NewStore(cfg.App.SeedData))
		importService     = importer.NewService(bankIncomeService)
		reportService     = report.NewService(logger)
	)

	router := csHttp.New(
		csHttp.Options{
			Timeout:            cfg.Server.Timeout,
			AllowedOrigins:     cfg.Server.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
		},
		saleHandler.NewHandler(saleService),
		expenseHandler.NewHandler(expenseService),
		bankIncomeHandler.NewHandler(bankIncomeService, importService),
		reportHandler.NewHandler(reportService),
		dashboardHandler.NewHandler(),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "seed", cfg.App.SeedData)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
