package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/phylo-app/phylo/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log            *logrus.Logger
	Database       DatabaseChecker
	Schema         SchemaChecker
	Relations      RelationRepository
	CORSOrigins    []string
	Version        string
	RateLimitRPS   float64
	RateLimitBurst int
	EnableHSTS     bool
}

// Router-level limits.
const (
	maxBodySize      = 1 << 20 // every endpoint is a GET; bodies are never read
	defaultRateLimit = 50
	defaultRateBurst = 100
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	rps, burst := deps.RateLimitRPS, deps.RateLimitBurst
	if rps <= 0 {
		rps = defaultRateLimit
	}
	if burst <= 0 {
		burst = defaultRateBurst
	}

	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders(deps.EnableHSTS))
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rps, burst).Handler())
	r.Use(middleware.PrometheusMiddleware())
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	health := NewHealthHandler(deps.Database, deps.Schema, deps.Log, deps.Version)
	relations := NewRelationHandler(deps.Relations, deps.Log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	trees := api.Group("/trees/:treeId")
	trees.GET("/relations/between", relations.Between)
	trees.GET("/relations/from/:memberId", relations.From)
	trees.GET("/relationships", relations.List)
	trees.GET("/snapshot", relations.Export)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r.Group("/api/v1"), deps)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})

	return r
}

// NewMetricsHandler serves the Prometheus registry on its own listener so
// scrapes never share the API rate limit.
func NewMetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
