package ports

import (
	"context"
	"errors"

	"github.com/ghalamif/PacketFlow/internal/domain"
)

// ErrQueueClosed is the terminal result of a closed queue: Enqueue reports it
// immediately, Dequeue reports it once every buffered packet has drained.
var ErrQueueClosed = errors.New("packetflow: queue closed")

// PacketQueue is the bounded FIFO buffer between the producer and consumer
// pools. Enqueue blocks while the queue is full, Dequeue blocks while it is
// empty; the Try variants never block. Close stops intake and lets consumers
// drain; once drained, Dequeue returns a terminal error.
type PacketQueue interface {
	Enqueue(ctx context.Context, p domain.Packet) error
	Dequeue(ctx context.Context) (domain.Packet, error)
	TryEnqueue(p domain.Packet) bool
	TryDequeue() (domain.Packet, bool)
	Len() int
	Cap() int
	Close()
}
