package routes

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type MetricsEndpoints struct {
	GetMetrics http.Handler
}

// NewMetricsEndpoints serves the registry, collection errors are logged and
// the metrics that could be gathered are still returned.
func NewMetricsEndpoints(log zerolog.Logger, registry *prometheus.Registry) *MetricsEndpoints {
	return &MetricsEndpoints{
		GetMetrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{
			ErrorLog:      promErrorLog{log: log.With().Str("component", "metrics").Logger()},
			ErrorHandling: promhttp.ContinueOnError,
		}),
	}
}

type promErrorLog struct {
	log zerolog.Logger
}

func (l promErrorLog) Println(v ...any) {
	l.log.Error().Msg(fmt.Sprint(v...))
}

func NewMetricsRoutes(endpoints *MetricsEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Handle("/internal/metrics", endpoints.GetMetrics)
	}
}
