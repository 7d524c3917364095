package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/crossword/pkg/config"
)

// WatchMetrics tracks the file watcher.
//
// Metrics:
//   - xwc_compiler_watch_events_total: debounced change batches delivered
//   - xwc_compiler_watch_files_changed_total: files recompiled after a change
//   - xwc_compiler_watch_errors_total: watcher errors
type WatchMetrics struct {
	eventsTotal  prometheus.Counter
	changedTotal prometheus.Counter
	errorsTotal  prometheus.Counter
}

// NewWatchMetrics creates and registers watch metrics with the provided registry.
func NewWatchMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *WatchMetrics {
	wm := &WatchMetrics{
		eventsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "watch_events_total",
			Help:      "Total number of debounced change batches",
		}),
		changedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "watch_files_changed_total",
			Help:      "Total number of files recompiled after a change",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "watch_errors_total",
			Help:      "Total number of file watcher errors",
		}),
	}

	registry.MustRegister(wm.eventsTotal, wm.changedTotal, wm.errorsTotal)
	return wm
}

// RecordBatch records one debounced batch of changed files.
func (wm *WatchMetrics) RecordBatch(files int) {
	wm.eventsTotal.Inc()
	wm.changedTotal.Add(float64(files))
}

// RecordError records a watcher error.
func (wm *WatchMetrics) RecordError() {
	wm.errorsTotal.Inc()
}
