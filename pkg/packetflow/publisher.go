package packetflow

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ghalamif/PacketFlow/internal/domain"
)

// Publisher lets host services push their own payloads into a running
// pipeline alongside the producer pool. Each Publish copies the payload, so
// the caller keeps ownership of its buffer.
type Publisher struct {
	q   PacketQueue
	seq atomic.Uint64
}

func NewPublisher(q PacketQueue) *Publisher {
	return &Publisher{q: q}
}

// Publish enqueues payload, blocking while the queue is full. Zero-length
// payloads are discarded without touching the queue.
func (p *Publisher) Publish(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	return p.q.Enqueue(ctx, p.wrap(payload))
}

// TryPublish is the non-blocking variant; it reports false when the queue is
// full or closed. Zero-length payloads are discarded and reported as accepted.
func (p *Publisher) TryPublish(payload []byte) bool {
	if len(payload) == 0 {
		return true
	}
	return p.q.TryEnqueue(p.wrap(payload))
}

func (p *Publisher) wrap(payload []byte) domain.Packet {
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return domain.Packet{
		Payload:            buf,
		Size:               len(buf),
		EventID:            p.seq.Add(1),
		EventCorrelationID: uuid.NewString(),
	}
}
