package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/entnt/dentalcare-server/internal/api/http/router"
	"github.com/entnt/dentalcare-server/internal/config"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/server"
	"github.com/entnt/dentalcare-server/internal/service"
	"github.com/entnt/dentalcare-server/internal/storage"
	"github.com/entnt/dentalcare-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	slots, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	clinic := service.NewClinic(slots, logger)
	if err := clinic.Init(ctx); err != nil {
		logger.Fatal("failed to initialize clinic store", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)

	engine := router.New(clinic, tokenManager, logger).Register()
	httpServer := server.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()

	if err := clinic.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during store shutdown", "error", err)
	}

	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
