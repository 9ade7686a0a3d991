// Package server exposes the prediction service over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skufu/heartguard/internal/metrics"
	"github.com/Skufu/heartguard/internal/prediction"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	RateLimitRPS   float64
	RateLimitBurst int
}

func DefaultOptions() Options {
	return Options{
		AllowedOrigins: []string{"*"},
		MaxBodyBytes:   1 << 20,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}
}

type Server struct {
	svc    *prediction.Service
	db     HealthChecker
	logger *zap.Logger
	opts   Options
}

// New builds the router. db may be nil when running without a database.
func New(svc *prediction.Service, db HealthChecker, logger *zap.Logger, opts Options) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{svc: svc, db: db, logger: logger, opts: opts}
	return s.setupRouter()
}

func (s *Server) setupRouter() *gin.Engine {
	useJSONFieldNames()

	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router := gin.New()
	router.Use(
		requestLogger(s.logger),
		recovery(s.logger),
		metrics.Middleware(),
		limitBodySize(s.opts.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: origins,
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", s.readyz)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	// RateLimitRPS <= 0 disables rate limiting.
	if s.opts.RateLimitRPS > 0 {
		api.Use(NewIPRateLimiter(s.opts.RateLimitRPS, s.opts.RateLimitBurst).Middleware())
	}
	{
		api.POST("/predictions", s.createPrediction)
		api.GET("/predictions/:id", s.getPrediction)
		api.GET("/patients/:patientId/predictions", s.listPredictions)
		api.PUT("/patients/:patientId/conditions", s.setConditions)
		api.GET("/patients/:patientId/stratification", s.stratifyPatient)
		api.POST("/stratify", s.stratify)
	}

	router.NoRoute(func(c *gin.Context) {
		appErr := &AppError{Message: "route not found", Code: "NOT_FOUND", HTTPStatus: http.StatusNotFound}
		c.AbortWithStatusJSON(appErr.HTTPStatus, errorBody{Error: appErr})
	})

	return router
}

func (s *Server) readyz(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}
