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

	"ateliercms/internal/cache"
	"ateliercms/internal/config"
	"ateliercms/internal/database"
	"ateliercms/internal/handlers"
	"ateliercms/internal/i18n"
	"ateliercms/internal/render"
	"ateliercms/internal/router"
	"ateliercms/internal/storage"
	"ateliercms/internal/store"
	"ateliercms/internal/token"
	"ateliercms/internal/validate"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return err
		}
	}

	valkey, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return err
	}
	defer valkey.Close()

	bundle, err := i18n.Load()
	if err != nil {
		return err
	}
	renderer, err := render.New(bundle)
	if err != nil {
		return err
	}

	media, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		return err
	}
	if media == nil {
		slog.Warn("media storage not configured, uploads disabled")
	}

	users := store.NewUserStore(db)
	settings := store.NewSiteSettingStore(db)
	projects := store.NewProjectStore(db)
	jobs := store.NewJobStore(db)
	applications := store.NewApplicationStore(db)
	quotes := store.NewQuoteStore(db)
	messages := store.NewMessageStore(db)

	signer := token.NewSigner(cfg.TokenSecret)
	validator := validate.New()
	pageCache := cache.NewPageCache(valkey, cache.DefaultPageTTL)

	handler := router.New(router.Deps{
		Signer: signer,
		Valkey: valkey,

		Public:       handlers.NewPublicHandler(renderer, settings, projects, jobs, pageCache),
		Admin:        handlers.NewAdminHandler(renderer, settings, projects, jobs, applications, quotes, messages),
		Auth:         handlers.NewAuthHandler(users, signer, validator, !cfg.IsDev(), "AtelierCMS"),
		Contact:      handlers.NewContactHandler(messages, validator),
		Quote:        handlers.NewQuoteHandler(quotes, validator),
		Applications: handlers.NewApplicationHandler(applications, jobs, validator),
		Jobs:         handlers.NewJobHandler(jobs, validator),
		Projects:     handlers.NewProjectHandler(projects, pageCache, validator),
		Settings:     handlers.NewSettingsHandler(settings, pageCache),
		Upload:       handlers.NewUploadHandler(media),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
