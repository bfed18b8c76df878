package packetflow

import (
	"context"

	base "github.com/ghalamif/PacketFlow/pkg/packetflow"
)

// Re-exported errors for convenience.
var (
	ErrQueueClosed       = base.ErrQueueClosed
	ErrChannelSinkClosed = base.ErrChannelSinkClosed
)

// Type aliases so consumers can import github.com/ghalamif/PacketFlow directly.
type (
	Config          = base.Config
	PipelineConfig  = base.PipelineConfig
	SourceConfig    = base.SourceConfig
	SinkConfig      = base.SinkConfig
	PostgresConfig  = base.PostgresConfig
	KafkaConfig     = base.KafkaConfig
	LoggingConfig   = base.LoggingConfig
	MetricsConfig   = base.MetricsConfig
	Flow            = base.Flow
	FlowOption      = base.FlowOption
	StreamInOption  = base.StreamInOption
	StreamOutOption = base.StreamOutOption
	Runtime         = base.Runtime
	RuntimeOption   = base.RuntimeOption
	Packet          = base.Packet
	PacketSink      = base.PacketSink
	PacketQueue     = base.PacketQueue
	Source          = base.Source
	Sink            = base.Sink
	Observability   = base.Observability
	EventLog        = base.EventLog
	Field           = base.Field
	Policy          = base.Policy
	Publisher       = base.Publisher
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Flow builder helpers.
func Conf(path string, opts ...FlowOption) (*Flow, error) {
	return base.Conf(path, opts...)
}

func ConfFromConfig(cfg *Config, opts ...FlowOption) (*Flow, error) {
	return base.ConfFromConfig(cfg, opts...)
}

func WithFlowOptions(opts ...RuntimeOption) FlowOption {
	return base.WithFlowOptions(opts...)
}

// Runtime helpers.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func Run(ctx context.Context, cfg *Config, opts ...RuntimeOption) error {
	rt, err := base.NewRuntime(cfg, opts...)
	if err != nil {
		return err
	}
	return rt.Run(ctx)
}

// Runtime option helpers.
func WithSource(src Source) RuntimeOption             { return base.WithSource(src) }
func WithSink(s Sink) RuntimeOption                   { return base.WithSink(s) }
func WithQueue(q PacketQueue) RuntimeOption           { return base.WithQueue(q) }
func WithObservability(o Observability) RuntimeOption { return base.WithObservability(o) }
func WithEventLog(e EventLog) RuntimeOption           { return base.WithEventLog(e) }

// Stream option helpers.
func StreamInSource(src Source) StreamInOption             { return base.StreamInSource(src) }
func StreamInQueue(q PacketQueue) StreamInOption           { return base.StreamInQueue(q) }
func StreamInObservability(o Observability) StreamInOption { return base.StreamInObservability(o) }
func StreamInEventLog(e EventLog) StreamInOption           { return base.StreamInEventLog(e) }
func StreamOutSink(s Sink) StreamOutOption                 { return base.StreamOutSink(s) }
func StreamOutObservability(o Observability) StreamOutOption {
	return base.StreamOutObservability(o)
}
func StreamOutCallback(name string, fn PacketSink) StreamOutOption {
	return base.StreamOutCallback(name, fn)
}

// Sink adapter helpers.
func NewCallbackSink(name string, fn PacketSink) Sink {
	return base.NewCallbackSink(name, fn)
}

func NewChannelSink(name string, buffer int) (Sink, <-chan Packet, func()) {
	return base.NewChannelSink(name, buffer)
}

// NewPublisher attaches a publisher to a queue, typically rt.Queue().
func NewPublisher(q PacketQueue) *Publisher {
	return base.NewPublisher(q)
}
