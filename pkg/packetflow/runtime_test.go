package packetflow

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Pipeline = PipelineConfig{
		Producers:       2,
		Consumers:       2,
		QueueCapacity:   8,
		ReadBufferBytes: 32,
	}
	cfg.Metrics.Addr = "127.0.0.1:0"
	cfg.Logging.File = filepath.Join(t.TempDir(), "system.log")
	return cfg
}

func TestNewRuntimeRequiresConfig(t *testing.T) {
	if _, err := NewRuntime(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}

func TestNewRuntimeWiresOverrides(t *testing.T) {
	cfg := testConfig(t)
	src := &stubSource{}
	snk := &stubSink{}
	obs := &stubObservability{}

	rt, err := NewRuntime(cfg,
		WithSource(src),
		WithSink(snk),
		WithObservability(obs),
		WithEventLog(&stubEventLog{}),
	)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}
	if rt.source != src {
		t.Fatalf("expected custom source to be wired")
	}
	if rt.sink != snk {
		t.Fatalf("expected custom sink to be wired")
	}
	if rt.obs != obs {
		t.Fatalf("expected custom observability to be wired")
	}
	if rt.Queue() == nil || rt.Queue().Cap() != 8 {
		t.Fatalf("expected default bounded queue with capacity 8")
	}
}

func TestRuntimeDeliversAndShutsDown(t *testing.T) {
	cfg := testConfig(t)

	snk, ch, closeSink := NewChannelSink("test", 64)
	defer closeSink()

	rt, err := NewRuntime(cfg,
		WithSource(&stubSource{}),
		WithSink(snk),
		WithObservability(&stubObservability{}),
		WithEventLog(&stubEventLog{}),
	)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	if err := rt.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	seen := make(map[string]bool)
	timeout := time.After(5 * time.Second)
	for len(seen) < 10 {
		select {
		case p := <-ch:
			seen[string(p.Payload[:p.Size])] = true
			if p.EventCorrelationID == "" {
				t.Fatalf("packet missing correlation ID: %+v", p)
			}
		case <-timeout:
			t.Fatalf("received only %d distinct payloads before timeout", len(seen))
		}
	}

	// Keep the channel drained so consumers never block on the sink while the
	// pipeline shuts down.
	go func() {
		for range ch {
		}
	}()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	// Second shutdown must be a no-op.
	if err := rt.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("repeated shutdown: %v", err)
	}
}

func TestRuntimeRunStopsOnContextCancel(t *testing.T) {
	cfg := testConfig(t)

	rt, err := NewRuntime(cfg,
		WithSource(&stubSource{}),
		WithSink(&stubSink{}),
		WithObservability(&stubObservability{}),
		WithEventLog(&stubEventLog{}),
	)
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rt.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("runtime did not stop after context cancellation")
	}
}

type stubSource struct {
	n atomic.Uint64
}

func (s *stubSource) Read(buf []byte) (int, error) {
	id := s.n.Add(1)
	return copy(buf, fmt.Sprintf("payload-%d", id)), nil
}

type stubSink struct {
	consumed atomic.Uint64
}

func (s *stubSink) Consume(Packet) error {
	s.consumed.Add(1)
	return nil
}

func (s *stubSink) Name() string { return "stub" }

type stubObservability struct{}

func (s *stubObservability) LogInfo(string, ...ports.Field)            {}
func (s *stubObservability) LogError(string, error, ...ports.Field)    {}
func (s *stubObservability) LogCritical(string, error, ...ports.Field) {}
func (s *stubObservability) IncCounter(string, float64)                {}
func (s *stubObservability) ObserveLatency(string, float64)            {}
func (s *stubObservability) SetGauge(string, float64)                  {}

type stubEventLog struct{}

func (s *stubEventLog) Append(string) {}
