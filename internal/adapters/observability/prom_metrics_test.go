package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

type recordingLog struct {
	lines []string
}

func (r *recordingLog) Append(line string) { r.lines = append(r.lines, line) }

func TestPromObsMetrics(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGatherer
	})

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	obs := NewPromObs(nil)

	obs.IncCounter("pflow_packets_produced_total", 5)
	if got := testutil.ToFloat64(obs.counters["pflow_packets_produced_total"]); got != 5 {
		t.Fatalf("expected produced counter 5, got %f", got)
	}

	obs.IncCounter("pflow_zero_reads_total", 2)
	if got := testutil.ToFloat64(obs.counters["pflow_zero_reads_total"]); got != 2 {
		t.Fatalf("expected zero read counter 2, got %f", got)
	}

	obs.SetGauge("pflow_queue_length", 42)
	if got := testutil.ToFloat64(obs.gauges["pflow_queue_length"]); got != 42 {
		t.Fatalf("expected queue gauge 42, got %f", got)
	}

	obs.ObserveLatency("pflow_sink_write_seconds", 0.5)
	hCollector := obs.histos["pflow_sink_write_seconds"].(prometheus.Collector)
	if samples := testutil.CollectAndCount(hCollector); samples != 1 {
		t.Fatalf("expected latency histogram to record 1 sample, got %d", samples)
	}

	// Unknown names must be ignored, not panic.
	obs.IncCounter("pflow_unknown_total", 1)
	obs.SetGauge("pflow_unknown", 1)
	obs.ObserveLatency("pflow_unknown_seconds", 1)
}

func TestPromObsFansOutToEventLog(t *testing.T) {
	origReg := prometheus.DefaultRegisterer
	origGatherer := prometheus.DefaultGatherer
	t.Cleanup(func() {
		prometheus.DefaultRegisterer = origReg
		prometheus.DefaultGatherer = origGatherer
	})

	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	events := &recordingLog{}
	obs := NewPromObs(events)

	obs.LogInfo("queue_initialized", ports.Field{Key: "capacity", Value: 100})
	if len(events.lines) != 1 {
		t.Fatalf("expected 1 event line, got %d", len(events.lines))
	}
	if events.lines[0] != "queue_initialized capacity=100" {
		t.Fatalf("unexpected event line %q", events.lines[0])
	}
}
