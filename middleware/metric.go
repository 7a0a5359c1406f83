package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	DatabaseUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_up",
			Help: "1 if the last MongoDB ping succeeded",
		},
	)

	metricsOnce sync.Once
)

func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(HttpRequestsTotal, HttpRequestDuration, DatabaseUp)
	})
}

func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
		return
	}
	DatabaseUp.Set(0)
}

func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = "undefined"
		}

		HttpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HttpRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
	}
}

// MetricsHandler expone /metrics; si allowedIPs no está vacío solo esas IPs pueden leerlo.
func MetricsHandler(allowedIPs []string) gin.HandlerFunc {
	h := promhttp.Handler()
	allowed := make(map[string]struct{}, len(allowedIPs))
	for _, ip := range allowedIPs {
		allowed[ip] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowed) > 0 {
			if _, ok := allowed[c.ClientIP()]; !ok {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		h.ServeHTTP(c.Writer, c.Request)
	}
}
