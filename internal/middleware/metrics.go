package middleware

import (
	"smartlife/internal/observability"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitMetrics builds the HTTP metrics middleware on its own registry, which
// also exposes the application counters and the Go runtime collectors.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		observability.AuthRejections,
		observability.StatsCache,
		observability.RedisErrors,
		observability.DatabaseQueryLatency,
	)
	return fiberprometheus.NewWithRegistry(reg, serviceName, "http", "", nil)
}

// MetricsMiddleware records request count and latency for every request.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
