package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"phonenumber_backend/internal/config"
	apphttp "phonenumber_backend/internal/http"
	"phonenumber_backend/internal/http/router"
	"phonenumber_backend/internal/numbering"
	"phonenumber_backend/platform/logger"
	"phonenumber_backend/platform/phonenumbers"
	"phonenumber_backend/platform/phonenumbers/prefixmap"
	"phonenumber_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Numbering Engine
	// ========================================================================

	filter := phonenumbers.EmptyFilter()
	if cfg.MetadataLiteBuild {
		filter = phonenumbers.ForLiteBuild()
	}
	metadata, err := phonenumbers.LoadMetadataWithFilter(phonenumbers.EmbeddedMetadata(), filter)
	if err != nil {
		log.Error("failed to load numbering metadata", "error", err)
		panic("failed to load numbering metadata: " + err.Error())
	}
	log.MetadataLoaded(len(metadata.SupportedRegions()), len(metadata.SupportedCallingCodes()), cfg.MetadataLiteBuild)

	util := phonenumbers.NewUtil(metadata)
	carriers := prefixmap.DefaultCarriers()

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	numberingModule := numbering.NewModule(util, carriers, cfg.DefaultRegion, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			numberingModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}
