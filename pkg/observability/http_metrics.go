package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmatchedPath labels requests that reached no route.
const UnmatchedPath = "unmatched"

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// HTTPMetrics returns fiber middleware for Prometheus instrumentation.
// Paths are labelled by route pattern to keep cardinality bounded.
func HTTPMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		path := c.Route().Path
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			if fe.Code == fiber.StatusNotFound {
				path = UnmatchedPath
			}
		}
		// fiber strings alias the request buffer, which is reused after the
		// handler returns; label values outlive it.
		labels := []string{
			utils.CopyString(c.Method()),
			utils.CopyString(path),
			strconv.Itoa(status),
		}
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(labels...).Inc()
		return err
	}
}
