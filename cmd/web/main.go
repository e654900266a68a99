// cmd/web/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"libery/internal/clients"
	"libery/internal/config"
	"libery/internal/store"
	"libery/internal/web"
	"libery/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Environment)
	defer log.Sync()

	client := clients.NewCatalogClient(cfg.BaseURL, clients.Endpoints{
		Items:    cfg.ItemsAPI,
		Books:    cfg.BooksAPI,
		Comics:   cfg.ComicsAPI,
		Journals: cfg.JournalsAPI,
	}, log)

	st := store.New(client, log)

	srv, err := web.NewServer(client, st, log)
	if err != nil {
		log.Fatal("server setup failed", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("catalog front-end listening",
			zap.String("port", cfg.Port),
			zap.String("backend", cfg.BaseURL),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}
