package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkstash/linkstash/internal/classifier"
	"github.com/linkstash/linkstash/internal/config"
	"github.com/linkstash/linkstash/internal/httpserver"
	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/links"
	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/metadata"
	"github.com/linkstash/linkstash/internal/redis"
	"github.com/linkstash/linkstash/internal/store"
	redisstore "github.com/linkstash/linkstash/internal/store/redis"
	"github.com/linkstash/linkstash/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	gateway     *store.Gateway
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// The remote blob store is optional: without it every write lands in
	// the session cache and is lost on restart.
	var remote store.BlobStore
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		remote = redisstore.NewBlobStore(client)
	} else {
		loggerClient.Warn("no remote store configured, running on session cache only")
	}

	gateway := store.NewGateway(remote, loggerClient)

	fetcher := metadata.NewFetcher(cfg.FetchTimeout, loggerClient)

	tagger, err := classifier.New(loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to build tag classifier: %v", err)
		os.Exit(1)
	}

	builder := links.NewBuilder(loggerClient)
	importer := links.NewImporter(fetcher, tagger, loggerClient)
	merger := links.NewMerger(gateway, loggerClient)

	// Warm the admin partition so the first request does not pay the
	// decode cost and startup logs show what we have.
	if remote != nil {
		warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		ds, err := gateway.LoadDataset(warmCtx, cfg.AdminPartition)
		cancel()
		if err != nil {
			loggerClient.Warn("could not load admin partition on startup",
				logger.String("partition", cfg.AdminPartition),
				logger.Error(err))
		} else {
			loggerClient.Info("admin partition loaded",
				logger.String("partition", cfg.AdminPartition),
				logger.Int("records", ds.Len()))
		}
	}

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		TimeNow:   time.Now,

		Gateway:  gateway,
		Builder:  builder,
		Importer: importer,
		Merger:   merger,
		Fetcher:  fetcher,
		Tagger:   tagger,

		AdminPartition: cfg.AdminPartition,
		GuestPrefix:    cfg.GuestPrefix,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		gateway:     gateway,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Linkstash v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Linkstash %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Linkstash stopped cleanly")
	return nil
}
