package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/crossword/pkg/config"
	"mercator-hq/crossword/pkg/crossword/compiler"
)

// Result label values for compiles_total.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// CompileMetrics tracks crossword compilation.
//
// Metrics:
//   - xwc_compiler_compiles_total: compiles by result
//   - xwc_compiler_compile_errors_total: failed compiles by error type
//   - xwc_compiler_compile_duration_seconds: compile latency
//   - xwc_compiler_clues_compiled_total: clues in successful compiles by direction
//   - xwc_compiler_light_cells: light cells in the last successful compile
type CompileMetrics struct {
	compilesTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	duration      prometheus.Histogram
	cluesCompiled *prometheus.CounterVec
	lightCells    prometheus.Gauge
}

// NewCompileMetrics creates and registers compile metrics with the provided registry.
func NewCompileMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CompileMetrics {
	cm := &CompileMetrics{
		compilesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compiles_total",
				Help:      "Total number of crossword compiles",
			},
			[]string{"result"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compile_errors_total",
				Help:      "Total number of failed compiles by error type",
			},
			[]string{"type"},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compile_duration_seconds",
				Help:      "Duration of crossword compiles in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
		),

		cluesCompiled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "clues_compiled_total",
				Help:      "Total number of clues in successful compiles",
			},
			[]string{"direction"},
		),

		lightCells: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "light_cells",
				Help:      "Number of light cells in the most recent successful compile",
			},
		),
	}

	registry.MustRegister(
		cm.compilesTotal,
		cm.errorsTotal,
		cm.duration,
		cm.cluesCompiled,
		cm.lightCells,
	)

	return cm
}

// Observe records one compile outcome.
func (cm *CompileMetrics) Observe(o compiler.Outcome) {
	cm.duration.Observe(o.Duration.Seconds())

	if !o.Succeeded() {
		cm.compilesTotal.WithLabelValues(ResultError).Inc()
		cm.errorsTotal.WithLabelValues(string(o.ErrorType)).Inc()
		return
	}

	cm.compilesTotal.WithLabelValues(ResultSuccess).Inc()
	cm.cluesCompiled.WithLabelValues("across").Add(float64(o.AcrossClues))
	cm.cluesCompiled.WithLabelValues("down").Add(float64(o.DownClues))
	cm.lightCells.Set(float64(o.LightCells))
}
