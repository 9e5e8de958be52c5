package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"authstack/internal/api"
	"authstack/internal/app/service"
	"authstack/internal/common/security"
	"authstack/internal/domain/repository"
	"authstack/internal/platform/cache"
	"authstack/internal/platform/config"
	"authstack/internal/platform/database"
	"authstack/internal/platform/mail"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	log.Println("Configuration loaded.")

	// 2. Connect MongoDB
	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()
	log.Println("MongoDB connected.")

	db := client.Database(cfg.MongoDB)
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		indexCancel()
		log.Fatalf("Could not ensure indexes: %v", err)
	}
	indexCancel()

	// 3. Connect Redis (optional, rate limiting only)
	rdb, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer cache.Close(rdb)
	if rdb != nil {
		log.Println("Redis connected.")
	} else {
		log.Println("Redis not configured, rate limiting disabled.")
	}

	// 4. Build components
	tokens := security.NewTokenManager(cfg.TokenKey, cfg.TokenExp)
	mailer := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		User:     cfg.MailUser,
		Password: cfg.MailPass,
		From:     cfg.MailFrom,
	})

	userRepo := repository.NewMongoUserRepository(db)
	verificationService := service.NewVerificationService(userRepo, mailer, cfg.Domain, cfg.VerifyTokenExp, cfg.ResetTokenExp)
	authService := service.NewAuthService(userRepo, tokens, verificationService)

	// 5. Router & HTTP Server
	router := api.NewRouter(cfg, tokens, authService, verificationService, rdb)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully.")
}
