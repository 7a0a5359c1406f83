package routes

import (
	"time"

	"resortpay/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EngineOptions struct {
	Logger            *zap.Logger
	CORSOrigins       []string
	RequestTimeout    time.Duration
	MetricsAllowedIPs []string
}

// NewEngine arma el router con el stack de middleware y todas las rutas.
func NewEngine(opts EngineOptions, deps Dependencies) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.PrometheusMiddleware())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.GET("/metrics", middleware.MetricsHandler(opts.MetricsAllowedIPs))

	InitializeRoutes(r, deps)
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
