package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "nebula-backend"

type Server struct {
	*http.Server
}

func New(cfg Config, h Handlers) (*Server, error) {
	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	// WriteTimeout stays unset so a slow extraction is not cut off mid-response
	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           NewEngine(cfg, h),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}

func NewEngine(cfg Config, h Handlers) *gin.Engine {
	engine := gin.New()

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware(serviceName))
		engine.Use(metricsMiddleware())
	}
	engine.Use(corsMiddleware())

	engine.GET("/stream", h.Stream.Resolve)
	engine.GET("/search", h.Media.Search)
	engine.GET("/autoplay/upnext", h.Media.UpNext)
	engine.GET("/track_info", h.Media.TrackInfo)
	engine.GET("/liked/all", h.Likes.All)
	engine.POST("/like", h.Likes.Toggle)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.metricsHandler != nil {
		engine.GET("/metrics", gin.WrapH(cfg.metricsHandler))
	}

	engine.NoRoute(h.Frontend.Serve)

	return engine
}
