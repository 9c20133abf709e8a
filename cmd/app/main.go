package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bands-console/internal/config"
	"bands-console/internal/database"
	"bands-console/internal/handler"
	"bands-console/internal/repository"
	"bands-console/internal/upstream"
	"bands-console/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Config load failed: %v", err)
	}
	logger.SetLevel(cfg.Level())

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	queries := database.New(db)

	// Репозитории
	draftRepo := repository.NewDraftRepository(db, queries)
	newsletterRepo := repository.NewNewsletterRepository(db, queries)

	// ISEP Bands API
	api := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)

	// Use Cases
	catalogUC := usecase.NewCatalogUseCase(api, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
	creationUC := usecase.NewCreationUseCase(api, draftRepo, catalogUC, logger)
	editorUC := usecase.NewEditorUseCase(api, draftRepo, catalogUC, logger)
	listingUC := usecase.NewListingUseCase(api, cfg.Location(), logger)
	newsletterUC := usecase.NewNewsletterUseCase(api, newsletterRepo, logger)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(creationUC, editorUC, listingUC, catalogUC, newsletterUC, logger)
	handler.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Очистка брошенных черновиков
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()
	purger := usecase.NewDraftPurger(draftRepo, cfg.DraftTTL, cfg.DraftPurgeInterval, logger)
	go purger.Run(purgeCtx)

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	stopPurge()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
