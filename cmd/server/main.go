package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"counter-service/internal/config"
	httpctl "counter-service/internal/controllers/http"
	"counter-service/internal/infra"
	mmysql "counter-service/internal/infra/mysql"
	"counter-service/internal/infra/rabbitmq"
	"counter-service/internal/logger"
	mysqlrepo "counter-service/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.Env); err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := mmysql.Open(cfg.MySQL, cfg.MaxOpenConn)
	if err != nil {
		logger.Log.Fatal("db: connect", zap.Error(err))
	}
	store := mysqlrepo.NewStore(db)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Log.Fatal("failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Log.Info("RABBITMQ_URL not set, order events are not published")
	}

	var cache infra.Cache
	if cfg.Redis.Host != "" {
		rdb, err := infra.NewRedisClient(ctx, cfg.Redis.Host)
		if err != nil {
			logger.Log.Warn("redis unavailable, promos are read from the database", zap.Error(err))
		} else {
			defer rdb.Close()
			cache = rdb
		}
	}

	handler := httpctl.NewHandler(store, publisher, cache, httpctl.Options{
		PromoTTL:  cfg.Redis.PromoTTL,
		LateAfter: cfg.LateAfter,
	})

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Info("starting counter service", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("server run", zap.Error(err))
	}
	logger.Log.Info("counter service stopped")
}
