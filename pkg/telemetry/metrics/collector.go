package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/crossword/pkg/config"
	"mercator-hq/crossword/pkg/crossword/compiler"
)

// Collector owns the Prometheus registry and every metric family exported
// by the xwc tools.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	compile *CompileMetrics
	watch   *WatchMetrics
}

// NewCollector creates a metrics collector registered on registry. If
// registry is nil, a fresh registry is created.
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	c := compiler.New(compiler.WithRecorder(collector))
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	namespaced := *cfg
	if namespaced.Namespace == "" {
		namespaced.Namespace = config.DefaultMetricsNamespace
	}
	if namespaced.Subsystem == "" {
		namespaced.Subsystem = config.DefaultMetricsSubsystem
	}
	if namespaced.Path == "" {
		namespaced.Path = config.DefaultMetricsPath
	}

	return &Collector{
		config:   &namespaced,
		registry: registry,
		compile:  NewCompileMetrics(&namespaced, registry),
		watch:    NewWatchMetrics(&namespaced, registry),
	}
}

// ObserveCompile records one compile outcome. It implements
// compiler.Recorder.
func (c *Collector) ObserveCompile(o compiler.Outcome) {
	c.compile.Observe(o)
}

// Watch returns the file watching metrics.
func (c *Collector) Watch() *WatchMetrics {
	return c.watch
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
