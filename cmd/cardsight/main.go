package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cardsight/internal/api"
	"cardsight/internal/api/handlers"
	"cardsight/internal/service"
	"cardsight/pkg/config"
	"cardsight/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting cardsight service")

	pdfService := service.NewPDFService(&cfg.Parser, appLogger)
	fieldService := service.NewFieldService(appLogger)
	txService := service.NewTransactionService(appLogger)
	statementService := service.NewStatementService(pdfService, fieldService, txService, appLogger)

	statementHandler := handlers.NewStatementHandler(statementService, cfg.Parser.TmpDir, appLogger)

	app := api.SetupRouter(&cfg.Server, statementHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
