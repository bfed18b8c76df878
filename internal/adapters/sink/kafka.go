package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// KafkaSink forwards payloads to a topic, keyed by correlation ID so packets
// from one correlation land on one partition in order.
type KafkaSink struct {
	writer  *kafka.Writer
	timeout time.Duration
}

func NewKafkaSink(brokers []string, topic string, timeout time.Duration) *KafkaSink {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		timeout: timeout,
	}
}

func (k *KafkaSink) Name() string { return "kafka" }

func (k *KafkaSink) Consume(p domain.Packet) error {
	if !p.HasData() {
		return nil
	}
	if k.writer == nil {
		return fmt.Errorf("kafka sink: writer not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), k.timeout)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(p.EventCorrelationID),
		Value: p.Payload[:p.Size],
	})
}

func (k *KafkaSink) Close() error {
	if k.writer == nil {
		return nil
	}
	return k.writer.Close()
}

var _ ports.Sink = (*KafkaSink)(nil)
