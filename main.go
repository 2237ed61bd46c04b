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

	"github.com/angristan/nebula-backend/internal/app/services/likes"
	"github.com/angristan/nebula-backend/internal/app/services/media"
	"github.com/angristan/nebula-backend/internal/app/services/stream"
	"github.com/angristan/nebula-backend/internal/domain"
	server "github.com/angristan/nebula-backend/internal/infra/http"
	frontendhandler "github.com/angristan/nebula-backend/internal/infra/http/handlers/frontend"
	likeshandler "github.com/angristan/nebula-backend/internal/infra/http/handlers/likes"
	mediahandler "github.com/angristan/nebula-backend/internal/infra/http/handlers/media"
	streamhandler "github.com/angristan/nebula-backend/internal/infra/http/handlers/stream"
	"github.com/angristan/nebula-backend/internal/infra/repository/cache/memory"
	rediscache "github.com/angristan/nebula-backend/internal/infra/repository/cache/redis"
	"github.com/angristan/nebula-backend/internal/infra/repository/jsonfile"
	"github.com/angristan/nebula-backend/internal/infra/repository/ytdlp"
	"github.com/angristan/nebula-backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

func main() {
	env, err := LoadEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load environment variables")
	}

	logger, err := newLogger(env.LogFormat, env.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	if logger.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := setupTracing(ctx, tracingConfig{
		endpoint:    env.OTLPEndpoint,
		sampleRatio: env.TraceSampleRatio,
	})
	if err != nil {
		logger.WithError(err).Warn("Tracing disabled")
		shutdownTracing = func(context.Context) error { return nil }
	}
	tracer := otel.Tracer(serviceName)

	extractor := ytdlp.New(ytdlp.NewClientConfig(env.YtdlpPath, env.ExtractorTimeout, tracer))
	if version, err := extractor.Version(ctx); err != nil {
		logger.WithError(err).Warn("yt-dlp is not usable, extraction requests will fail")
	} else {
		logger.WithField("version", version).Info("Found yt-dlp")
	}

	streamCache, err := newStreamCache(ctx, env, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up stream cache")
	}

	likesStore := jsonfile.New[domain.Track](env.LikesFile, "liked")

	streamService := stream.New(tracer, logger, extractor, streamCache, env.StreamCacheTTL)
	mediaService := media.New(tracer, logger, extractor)
	likesService := likes.New(tracer, logger, likesStore)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.Register(reg)

	srv, err := server.New(
		server.NewConfig(env.Port, env.DisableMiddleware, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		server.Handlers{
			Stream:   streamhandler.New(tracer, streamService),
			Media:    mediahandler.New(tracer, mediaService),
			Likes:    likeshandler.New(tracer, likesService),
			Frontend: frontendhandler.New(os.DirFS(env.FrontendDir)),
		},
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create server")
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shut down server")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to flush traces")
	}
}

// newStreamCache uses Redis when REDIS_URL is set and an in-process map
// otherwise.
func newStreamCache(ctx context.Context, env *Env, logger logrus.FieldLogger) (stream.Cache, error) {
	if env.RedisURL == "" {
		c := memory.NewCache(env.StreamCacheTTL)
		if env.StreamCacheSweepInterval > 0 {
			go c.RunSweeper(ctx, env.StreamCacheSweepInterval, logger)
		}
		return c, nil
	}

	opts, err := redis.ParseURL(env.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}

	c := rediscache.NewCache(redis.NewClient(opts), env.StreamCacheTTL)
	if err := c.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("Using Redis stream cache")

	return c, nil
}
