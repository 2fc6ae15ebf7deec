// Package main Linked Calc API
// @title Linked Calc API
// @version 1.0
// @description Validates and evaluates arithmetic expressions left to right, without operator precedence
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/linked-calc/docs"
	"github.com/DjordjeVuckovic/linked-calc/internal/api/router"
	"github.com/DjordjeVuckovic/linked-calc/internal/api/server"
	"github.com/DjordjeVuckovic/linked-calc/internal/evaluation"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/factory"
	"github.com/DjordjeVuckovic/linked-calc/internal/logging"
	"github.com/DjordjeVuckovic/linked-calc/internal/metrics"
	pkgserver "github.com/DjordjeVuckovic/linked-calc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig(os.Getenv("APP_ENV"))
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if _, err := logging.Setup(sCfg.LogLevel, sCfg.LogFormat); err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// Signal handling starts with the server, so the storer shares its context.
	checks := pkgserver.CompositeHealthChecker{}
	s := server.New(sCfg, &checks)

	storer, closeStorer, err := factory.NewStorer(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create history storer", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer closeStorer()
	checks = append(checks, pkgserver.CheckerOf(storer))

	recorder := metrics.NewRecorder()

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		SetupMetrics("/metrics", recorder.Handler())

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Linked Calc API is running")
	})

	service := evaluation.NewService(storer, evaluation.WithMetrics(recorder))
	router.NewCalcRouter(s.Echo, service).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		closeStorer()
		os.Exit(1)
	}
}
