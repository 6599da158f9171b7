package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hub-service/internal/application/services"
	"hub-service/internal/config"
	"hub-service/internal/delivery/handler"
	"hub-service/internal/infrastructure"
	"hub-service/internal/infrastructure/db"
	"hub-service/internal/messaging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal("❌ ", err)
	}
}

// run wires the service and blocks until shutdown or a server error.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close(context.Background())

	redisService := infrastructure.NewRedisService(ctx, infrastructure.RedisOptions{
		URL:      cfg.RedisURL,
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisService.Close()

	loginLimiter := infrastructure.NewLoginLimiter(redisService, cfg.LoginAttemptsWindow, cfg.LoginAttemptsMax)
	if closer, ok := loginLimiter.(io.Closer); ok {
		defer closer.Close()
	}

	publisher, err := messaging.ConnectNats(cfg.NatsURL)
	if err != nil {
		return err
	}
	defer publisher.Close()

	mailer := infrastructure.NewMailer(cfg.EmailAPIKey, cfg.EmailSender)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	h := handler.NewHandler(
		services.NewUserService(store.Users, jwtService, loginLimiter, mailer, publisher),
		services.NewPostService(store.Posts, store.Users, publisher),
		services.NewProfileService(store.Profiles, store.Users, store.Posts, publisher),
	)
	e := handler.NewServer(h, jwtService, handler.ServerOptions{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server running on %s (store: %s)", cfg.Addr(), cfg.StoreDriver)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	return nil
}
