package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Source   SourceConfig   `yaml:"source"`
	Sink     SinkConfig     `yaml:"sink"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type PipelineConfig struct {
	Producers       int `yaml:"producers"`
	Consumers       int `yaml:"consumers"`
	QueueCapacity   int `yaml:"queue_capacity"`
	ReadBufferBytes int `yaml:"read_buffer_bytes"`
}

type SourceConfig struct {
	Seed int64 `yaml:"seed"`
}

type SinkConfig struct {
	Kind     string         `yaml:"kind"` // "console", "postgres", "kafka"
	Postgres PostgresConfig `yaml:"postgres"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

type PostgresConfig struct {
	ConnString string `yaml:"conn_string"`
	Table      string `yaml:"table"`
}

type KafkaConfig struct {
	Brokers []string      `yaml:"brokers"`
	Topic   string        `yaml:"topic"`
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	File string `yaml:"file"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	if c.Pipeline.Producers == 0 {
		c.Pipeline.Producers = 20
	}
	if c.Pipeline.Consumers == 0 {
		c.Pipeline.Consumers = 10
	}
	if c.Pipeline.QueueCapacity == 0 {
		c.Pipeline.QueueCapacity = 100
	}
	if c.Pipeline.ReadBufferBytes == 0 {
		c.Pipeline.ReadBufferBytes = 1024
	}
	if c.Sink.Kind == "" {
		c.Sink.Kind = "console"
	}
	if c.Sink.Postgres.Table == "" {
		c.Sink.Postgres.Table = "packets"
	}
	if c.Sink.Kafka.Timeout == 0 {
		c.Sink.Kafka.Timeout = 5 * time.Second
	}
	if c.Logging.File == "" {
		c.Logging.File = "./data/system.log"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9100"
	}
}

func (c *Config) Validate() error {
	if c.Pipeline.Producers <= 0 {
		return fmt.Errorf("pipeline.producers must be positive")
	}
	if c.Pipeline.Consumers <= 0 {
		return fmt.Errorf("pipeline.consumers must be positive")
	}
	if c.Pipeline.QueueCapacity <= 0 {
		return fmt.Errorf("pipeline.queue_capacity must be positive")
	}
	if c.Pipeline.ReadBufferBytes <= 0 {
		return fmt.Errorf("pipeline.read_buffer_bytes must be positive")
	}

	switch c.Sink.Kind {
	case "console":
	case "postgres":
		if c.Sink.Postgres.ConnString == "" {
			return fmt.Errorf("sink.postgres.conn_string is required for the postgres sink")
		}
	case "kafka":
		if len(c.Sink.Kafka.Brokers) == 0 {
			return fmt.Errorf("sink.kafka.brokers is required for the kafka sink")
		}
		if c.Sink.Kafka.Topic == "" {
			return fmt.Errorf("sink.kafka.topic is required for the kafka sink")
		}
	default:
		return fmt.Errorf("unknown sink.kind %q", c.Sink.Kind)
	}

	return nil
}

// Policy maps the pipeline section onto the runtime tunables consumed by the
// coordinator.
func (c *Config) Policy() ports.Policy {
	return ports.Policy{
		Producers:       c.Pipeline.Producers,
		Consumers:       c.Pipeline.Consumers,
		QueueCapacity:   c.Pipeline.QueueCapacity,
		ReadBufferBytes: c.Pipeline.ReadBufferBytes,
	}
}
