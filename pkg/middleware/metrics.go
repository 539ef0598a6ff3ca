package middleware

import (
	"strconv"
	"time"

	"github.com/DoisLONG/GenAIStudio/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

// Middleware records per-request counters and latency. The route pattern is
// used as the path label to keep cardinality bounded.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		prometheus.RequestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Method(), path).
			Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
