package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/api/option"

	"github.com/spacesedan/ytsentiment/config"
	"github.com/spacesedan/ytsentiment/internal/analysis"
	"github.com/spacesedan/ytsentiment/internal/clients"
	"github.com/spacesedan/ytsentiment/internal/logging"
	"github.com/spacesedan/ytsentiment/internal/sentiment"
	"github.com/spacesedan/ytsentiment/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	settings := config.Load()
	logging.InitLogger(settings.LogLevel)

	ctx := context.Background()

	policy := clients.DefaultCallPolicy()
	policy.MaxAttempts = settings.YouTubeMaxAttempts
	policy.Timeout = settings.YouTubeTimeout

	var ytOpts []option.ClientOption
	if settings.YouTubeEndpoint != "" {
		ytOpts = append(ytOpts, option.WithEndpoint(settings.YouTubeEndpoint))
	}

	// A nil source keeps the server up; /analizar/ answers 503 until a key is set.
	var source analysis.VideoSource
	youtubeClient, err := clients.NewYouTubeClient(ctx, settings.YouTubeAPIKey, policy, ytOpts...)
	if err != nil {
		slog.Error("YouTube client unavailable", slog.String("error", err.Error()))
	} else {
		source = youtubeClient
	}

	var opts []analysis.Option
	if settings.ValkeyAddress != "" {
		valkeyClient, err := clients.NewValkeyClient(ctx, clients.ValkeyOptions{
			Address:  settings.ValkeyAddress,
			Password: settings.ValkeyPassword,
			TLS:      settings.ValkeyTLS,
			TTL:      settings.MetadataCacheTTL,
		})
		if err != nil {
			slog.Warn("Metadata cache disabled", slog.String("error", err.Error()))
		} else {
			defer valkeyClient.Close()
			opts = append(opts, analysis.WithMetadataCache(valkeyClient))
		}
	}

	svc := analysis.NewService(source, sentiment.NewVaderScorer(), opts...)
	srv := server.New(svc, settings.CORSOrigins)

	// Handle graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen(":" + settings.Port)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			slog.Error("Server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-stopChan:
		slog.Info("Shutting down", slog.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", slog.String("error", err.Error()))
		}
	}
}
