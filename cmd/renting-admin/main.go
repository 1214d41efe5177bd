package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/federicojaime/renting-app-sub000/internal/delivery/web"
	"github.com/federicojaime/renting-app-sub000/internal/gateway"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/config"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/logger"
	"github.com/federicojaime/renting-app-sub000/internal/pkg/storage"
	"github.com/federicojaime/renting-app-sub000/internal/service"
	"github.com/federicojaime/renting-app-sub000/internal/session"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting renting admin server", map[string]interface{}{
		"api_base_url": cfg.API.BaseURL,
	})

	// =========================================================================
	// Локальное состояние сессии
	// =========================================================================

	st, err := storage.NewFileStore(cfg.State.FilePath)
	if err != nil {
		log.Fatal("Failed to open state file", map[string]interface{}{
			"error": err.Error(),
			"path":  cfg.State.FilePath,
		})
	}

	sess := session.New(st, log)

	// =========================================================================
	// Клиент REST бэкенда
	// =========================================================================

	// Сессия отдает токен клиенту, клиент выполняет логин для сессии.
	// Цикл разрывается через SetAPI.
	api := gateway.NewClient(cfg.API.BaseURL, sess, log)
	sess.SetAPI(api)

	// Протухший токен сбрасывает сессию, редирект делает web слой
	api.OnUnauthorized(sess.Logout)

	log.Info("Backend gateway initialized")

	// =========================================================================
	// Создание services
	// =========================================================================

	vehicleService := service.NewVehicleService(api, log)
	clientService := service.NewClientService(api, log)
	rentalService := service.NewRentalService(api, log)
	dashboardService := service.NewDashboardService(vehicleService, clientService, rentalService, log)

	log.Info("Services initialized")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	renderer, err := web.NewRenderer(log)
	if err != nil {
		log.Fatal("Failed to parse templates", map[string]interface{}{
			"error": err.Error(),
		})
	}

	authHandler := web.NewAuthHandler(sess, renderer, log)
	dashboardHandler := web.NewDashboardHandler(dashboardService, sess, renderer, log)
	vehicleHandler := web.NewVehicleHandler(vehicleService, rentalService, renderer, log)
	clientHandler := web.NewClientHandler(clientService, rentalService, renderer, log)
	rentalHandler := web.NewRentalHandler(rentalService, vehicleService, clientService, renderer, log)
	reportHandler := web.NewReportHandler(dashboardService, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := web.NewRouter(
		authHandler,
		dashboardHandler,
		vehicleHandler,
		clientHandler,
		rentalHandler,
		reportHandler,
		sess,
		renderer,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Admin server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
			if err := srv.Close(); err != nil {
				log.Fatal("Could not stop server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped")
	}
}
