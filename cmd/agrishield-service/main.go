package main

import (
	"fmt"
	"os"

	"agrishield-service/internal/auth"
	"agrishield-service/internal/config"
	"agrishield-service/internal/db"
	httphandler "agrishield-service/internal/http"
	"agrishield-service/internal/http/middleware"
	"agrishield-service/internal/logger"
	"agrishield-service/internal/repository"
	"agrishield-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	reportRepo := repository.NewReportRepository(database)
	auditRepo := repository.NewAuditRepository(database)
	recordRepo := repository.NewRecordRepository(database)

	reportService := service.NewReportService(reportRepo, auditRepo, cfg.Reports.TopLimit, cfg.Reports.RecentActivityLimit, cfg.Reports.DefaultPeriodDays)
	recordService := service.NewRecordService(recordRepo, auditRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(reportService, recordService, appLogger, cfg.Environment)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting agrishield service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
