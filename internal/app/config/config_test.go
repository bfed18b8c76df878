package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `
pipeline:
  queue_capacity: 64
sink:
  kind: console
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Pipeline.Producers != 20 {
		t.Fatalf("expected default 20 producers, got %d", cfg.Pipeline.Producers)
	}
	if cfg.Pipeline.Consumers != 10 {
		t.Fatalf("expected default 10 consumers, got %d", cfg.Pipeline.Consumers)
	}
	if cfg.Pipeline.QueueCapacity != 64 {
		t.Fatalf("expected configured capacity 64, got %d", cfg.Pipeline.QueueCapacity)
	}
	if cfg.Pipeline.ReadBufferBytes != 1024 {
		t.Fatalf("expected default 1024-byte read buffers, got %d", cfg.Pipeline.ReadBufferBytes)
	}
	if cfg.Logging.File != "./data/system.log" {
		t.Fatalf("expected default log file, got %s", cfg.Logging.File)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Fatalf("expected default metrics addr :9100, got %s", cfg.Metrics.Addr)
	}
}

func TestLoadRejectsPostgresSinkWithoutConnString(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `
sink:
  kind: postgres
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "conn_string") {
		t.Fatalf("expected conn_string validation error, got %v", err)
	}
}

func TestLoadRejectsUnknownSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := `
sink:
  kind: carrier-pigeon
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unknown sink.kind") {
		t.Fatalf("expected unknown sink error, got %v", err)
	}
}

func TestValidateRejectsNonPositiveCounts(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Pipeline.Consumers = -1

	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "consumers") {
		t.Fatalf("expected consumers validation error, got %v", err)
	}
}

func TestPolicyMapsPipelineSection(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	pol := cfg.Policy()
	if pol.Producers != 20 || pol.Consumers != 10 || pol.QueueCapacity != 100 || pol.ReadBufferBytes != 1024 {
		t.Fatalf("unexpected policy %+v", pol)
	}
}
