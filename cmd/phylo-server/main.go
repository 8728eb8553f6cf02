// Command phylo-server serves kinship queries over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/phylo-app/phylo/internal/api"
	"github.com/phylo-app/phylo/internal/config"
	"github.com/phylo-app/phylo/internal/db"
	"github.com/phylo-app/phylo/internal/db/migrations"
	"github.com/phylo-app/phylo/internal/dbpool"
	"github.com/phylo-app/phylo/internal/service"
	"github.com/phylo-app/phylo/internal/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("phylo-server exited")
	}
}

func run(log *logrus.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	configureLogger(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			return err
		}
	}

	trees := store.NewTreeStore(store.Base{Pool: pool, Log: log})
	relations := service.NewRelationshipService(trees, log, cfg.RelationFanout, config.Version)

	gin.SetMode(gin.ReleaseMode)

	apiServer := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(ctx, &api.RouterDeps{
			Log:            log,
			Database:       pool,
			Schema:         trees,
			Relations:      relations,
			CORSOrigins:    cfg.CORSOrigins,
			Version:        config.Version,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			EnableHSTS:     cfg.EnableHSTS,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           api.NewMetricsHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":         cfg.Addr(),
		"metrics_addr": cfg.MetricsAddr(),
		"version":      config.Version,
		"database":     cfg.DatabaseURL,
	}).Info("phylo-server starting")

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error { return serve(apiServer) })
	eg.Go(func() error { return serve(metricsServer) })
	eg.Go(func() error {
		<-egCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(apiServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	return eg.Wait()
}

func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	}

	return nil
}

func configureLogger(log *logrus.Logger, cfg *config.Config) {
	if cfg.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// LogLevel was validated by config.Load.
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
}
