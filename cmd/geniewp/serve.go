// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"geniewp/internal/assistant"
	"geniewp/internal/cache"
	"geniewp/internal/config"
	"geniewp/internal/generator"
	"geniewp/internal/handlers"
	"geniewp/internal/middleware"
	"geniewp/internal/router"
	"geniewp/internal/session"
	"geniewp/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return serve(cfg)
	},
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func serve(cfg *config.Config) error {
	setupLogger(cfg)
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "store", cfg.StoreDriver)

	st, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	checks := map[string]handlers.Pinger{}
	if st.db != nil {
		checks["database"] = st.db.PingContext
	}

	secureCookies := !cfg.IsDev()
	var (
		sessions *session.Store
		values   assistant.ValuesSink
	)
	if cfg.ValkeyHost != "" {
		ctx, cancel := timeoutContext(5 * time.Second)
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		cancel()
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = session.NewStore(client, secureCookies)
		values = cache.NewGuidedValues(client, cache.DefaultGuidedTTL)
		checks["valkey"] = pingValkey(client)
	} else {
		slog.Warn("VALKEY_HOST not set, sessions and guided values kept in memory")
		sessions = session.NewMemoryStore(secureCookies)
		values = assistant.NewMemoryValues()
	}

	registry := newRegistry(context.Background(), cfg, st.settings)

	opts := generator.Options{
		Fs:       afero.NewOsFs(),
		Root:     cfg.ThemesDir,
		Fetcher:  generator.NewFetcher(registry),
		Settings: st.settings,
		Themes:   st.themes,
	}
	archives, err := storage.New(storage.Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		return err
	}
	if archives != nil {
		opts.Archives = archives
		slog.Info("theme archives enabled", "bucket", cfg.S3Bucket)
	}
	assembler := generator.NewAssembler(opts)

	proxy := assistant.NewProxy(
		assistant.NewClient(cfg.AssistantsBaseURL, cfg.AITimeout),
		st.settings, values, cfg.AssistantDefaultID,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitEvery)
	defer limiter.Stop()

	r := router.New(router.Deps{
		Sessions:  sessions,
		Namespace: cfg.APINamespace,
		Secure:    secureCookies,
		API:       handlers.NewAPI(proxy, handlers.NewTemplates(afero.NewOsFs(), cfg.TemplatesDir)),
		Generate:  handlers.NewGenerate(assembler, cfg.AdminURL),
		Auth: handlers.NewAuth(sessions, handlers.Credentials{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
			TOTPSecret:   cfg.AdminTOTPSecret,
		}),
		Settings: handlers.NewSettings(st.settings, registry),
		Themes:   handlers.NewThemes(st.themes),
		Health:   handlers.Health(checks),
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.AITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}

func pingValkey(client *redis.Client) handlers.Pinger {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
