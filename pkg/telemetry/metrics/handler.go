package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns an HTTP handler for the Prometheus metrics endpoint,
// mounted at MetricsConfig.Path by the watch command.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
		},
	)
}

// NewServer returns an HTTP server exposing Handler at the configured
// path on the configured listen address. Each mount function may register
// further handlers, such as health endpoints, on the same mux.
func (c *Collector) NewServer(mount ...func(*http.ServeMux)) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(c.config.Path, c.Handler())
	for _, m := range mount {
		m(mux)
	}
	return &http.Server{
		Addr:    c.config.ListenAddress,
		Handler: mux,
	}
}
