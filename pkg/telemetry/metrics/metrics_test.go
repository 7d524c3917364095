package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"mercator-hq/crossword/pkg/config"
	"mercator-hq/crossword/pkg/crossword/compiler"
	xwErrors "mercator-hq/crossword/pkg/crossword/errors"
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "xwc",
		Path:      "/metrics",
	}
}

func TestCollector_NewCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(testConfig(), registry)

	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if collector.Watch() == nil {
		t.Error("Watch metrics not initialized")
	}
}

func TestCollector_NewCollector_Defaults(t *testing.T) {
	collector := NewCollector(&config.MetricsConfig{}, nil)
	collector.ObserveCompile(compiler.Outcome{})

	count, err := testutil.GatherAndCount(collector.Registry(), "xwc_compiler_compiles_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 series under default names, got %d", count)
	}
}

func TestCollector_ObserveCompile(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	var _ compiler.Recorder = collector

	collector.ObserveCompile(compiler.Outcome{
		Duration:    2 * time.Millisecond,
		AcrossClues: 3,
		DownClues:   2,
		LightCells:  21,
	})
	collector.ObserveCompile(compiler.Outcome{
		Duration:    time.Millisecond,
		AcrossClues: 1,
		DownClues:   1,
		LightCells:  9,
	})
	collector.ObserveCompile(compiler.Outcome{
		Duration:  time.Millisecond,
		ErrorType: xwErrors.ErrorTypeCoherence,
	})

	cm := collector.compile
	tests := []struct {
		name      string
		collector prometheus.Collector
		want      float64
	}{
		{"successes", cm.compilesTotal.WithLabelValues(ResultSuccess), 2},
		{"failures", cm.compilesTotal.WithLabelValues(ResultError), 1},
		{"coherence errors", cm.errorsTotal.WithLabelValues("coherence"), 1},
		{"across clues", cm.cluesCompiled.WithLabelValues("across"), 4},
		{"down clues", cm.cluesCompiled.WithLabelValues("down"), 3},
		{"light cells from last success", cm.lightCells, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tt.collector); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if n := testutil.CollectAndCount(cm.duration); n != 1 {
		t.Errorf("expected one duration histogram, got %d", n)
	}
}

func TestWatchMetrics(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	wm := collector.Watch()

	wm.RecordBatch(3)
	wm.RecordBatch(1)
	wm.RecordError()

	if got := testutil.ToFloat64(wm.eventsTotal); got != 2 {
		t.Errorf("events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(wm.changedTotal); got != 4 {
		t.Errorf("files changed = %v, want 4", got)
	}
	if got := testutil.ToFloat64(wm.errorsTotal); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.ObserveCompile(compiler.Outcome{AcrossClues: 1, LightCells: 5})

	srv := httptest.NewServer(collector.NewServer().Handler)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	for _, want := range []string{
		`test_xwc_compiles_total{result="success"} 1`,
		"test_xwc_light_cells 5",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
