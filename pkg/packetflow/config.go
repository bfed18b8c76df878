package packetflow

import (
	"github.com/ghalamif/PacketFlow/internal/app/config"
)

// Config re-exports the root configuration struct so downstream projects can
// construct or modify it programmatically.
type Config = config.Config

type (
	// PipelineConfig sets worker counts, queue capacity, and buffer size.
	PipelineConfig = config.PipelineConfig
	// SourceConfig configures the synthetic data source.
	SourceConfig = config.SourceConfig
	// SinkConfig selects and configures the downstream sink.
	SinkConfig = config.SinkConfig
	// PostgresConfig configures the archive sink.
	PostgresConfig = config.PostgresConfig
	// KafkaConfig configures the topic forwarder sink.
	KafkaConfig = config.KafkaConfig
	// LoggingConfig configures the append-only event log.
	LoggingConfig = config.LoggingConfig
	// MetricsConfig configures the ops HTTP server.
	MetricsConfig = config.MetricsConfig
)

// LoadConfig loads YAML from disk using the internal config reader.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}
