package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	httpadapter "igusafarm/internal/adapter/http"
	metricsinmem "igusafarm/internal/adapter/metrics/inmemory"
	boltrepo "igusafarm/internal/adapter/repo/bolt"
	gormrepo "igusafarm/internal/adapter/repo/gorm"
	"igusafarm/internal/adapter/repo/memory"
	redisrepo "igusafarm/internal/adapter/repo/redis"
	"igusafarm/internal/app/play"
	"igusafarm/internal/app/ports"
	"igusafarm/internal/app/savegame"
	"igusafarm/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	store, health, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("closing store", "driver", cfg.StoreDriver, "err", err)
		}
	}()

	recorder := metricsinmem.NewRecorder()
	session := play.New(play.Options{
		Saver:   savegame.NewAdapter(store, logger, recorder),
		Metrics: recorder,
		Logger:  logger,
		Debug:   cfg.DebugMode,
		Rand:    newRand(cfg.RandSeed),
	})

	h := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	httpadapter.Handler{
		Session:     session,
		Metrics:     recorder,
		Health:      health,
		AllowOrigin: cfg.AllowOrigin,
	}.RegisterRoutes(h)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr, "session_id", session.ID(), "debug", cfg.DebugMode)
		return h.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return h.Shutdown(shutdownCtx)
	})

	if cfg.TickInterval > 0 {
		g.Go(func() error {
			err := session.Run(gctx, cfg.TickInterval)
			if gctx.Err() != nil {
				return nil
			}
			return err
		})
	}

	return g.Wait()
}

// openStore returns the snapshot store for cfg.StoreDriver together with
// the health checks that cover it and a func releasing its connections.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.SnapshotStore, map[string]httpadapter.Checker, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("using in-memory store; progress is lost on restart")
		return memory.NewStore(), nil, noop, nil

	case config.StoreBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.BoltPath), 0o755); err != nil {
			return nil, nil, noop, fmt.Errorf("creating bolt dir: %w", err)
		}
		store, err := boltrepo.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("opening bolt store: %w", err)
		}
		logger.Info("opened bolt store", "path", cfg.BoltPath)
		return store, nil, store.Close, nil

	case config.StoreRedis:
		store, err := redisrepo.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("connected to redis")
		return store, map[string]httpadapter.Checker{"redis": redisChecker{store}}, store.Close, nil

	case config.StorePostgres:
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, nil, noop, fmt.Errorf("connecting to postgres: %w", err)
		}
		if err := gormrepo.ApplyEmbeddedMigrations(ctx, db); err != nil {
			_ = gormrepo.Close(db)
			return nil, nil, noop, fmt.Errorf("running migrations: %w", err)
		}
		logger.Info("connected to postgres")
		closeDB := func() error { return gormrepo.Close(db) }
		return gormrepo.NewSnapshotStore(db), map[string]httpadapter.Checker{"postgres": dbChecker{db}}, closeDB, nil
	}
	return nil, nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// dbChecker adapts *gorm.DB to httpadapter.Checker.
type dbChecker struct{ db *gorm.DB }

func (d dbChecker) Check(ctx context.Context) error { return gormrepo.Ping(ctx, d.db) }

// redisChecker adapts the redis store to httpadapter.Checker.
type redisChecker struct{ store *redisrepo.Store }

func (r redisChecker) Check(ctx context.Context) error { return r.store.Ping(ctx) }
