package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-be/internal/config"
	"github.com/bistroboss/bistro-be/internal/processor/stripeintent"
	"github.com/bistroboss/bistro-be/internal/server"
	"github.com/bistroboss/bistro-be/internal/storage/mongodb"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := mongodb.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}

	intents := stripeintent.New(cfg.StripeSecretKey)
	srv := server.New(cfg, store, intents, log)

	go func() {
		log.Info().Str("addr", cfg.HTTPAddress()).Msg("bistro backend listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	if err := store.Close(ctxShutdown); err != nil {
		log.Error().Err(err).Msg("store close error")
	}
}
