package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/config"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/httpapi"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store/memory"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/store/postgres"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/telemetry"
	"github.com/Poovarasan-554/Seamless-Maintenance-Bot/internal/token"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg := config.Load()
	shutdownTelemetry := telemetry.Setup("issue-service")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	issues := memory.NewStore()
	var credentials store.CredentialStore = issues
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer pool.Close()
		credentials = postgres.NewStore(pool)
	}

	tokens := token.New(cfg.JWTSecret, cfg.TokenTTL)
	handler := httpapi.NewHandler(credentials, issues, tokens)

	otelHandler := otelhttp.NewHandler(httpapi.LoggingMiddleware(handler.Routes()), "issue-service")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("issue-service listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
