package pipeline

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// runProducer reads payloads from the source and pushes them into the queue
// until the context is cancelled or the queue closes. The read buffer is
// allocated fresh per packet, outside any lock, and ownership moves to the
// queue on a successful enqueue.
func runProducer(ctx context.Context, src ports.Source, q ports.PacketQueue, pol ports.Policy, seq *atomic.Uint64, obs ports.Observability) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		buf := make([]byte, pol.ReadBufferBytes)
		n, err := src.Read(buf)
		if err != nil {
			obs.LogError("source_read_failed", err)
			continue
		}
		if n <= 0 {
			// No data this cycle; discard and retry. Nothing reaches the queue.
			obs.IncCounter("pflow_zero_reads_total", 1)
			continue
		}

		pkt := domain.Packet{
			Payload:            buf,
			Size:               n,
			EventID:            seq.Add(1),
			EventCorrelationID: uuid.NewString(),
		}

		if err := q.Enqueue(ctx, pkt); err != nil {
			// Cancellation and close are the normal shutdown paths.
			if ctx.Err() != nil || err == ports.ErrQueueClosed {
				return nil
			}
			obs.LogError("enqueue_failed", err)
			continue
		}

		obs.IncCounter("pflow_packets_produced_total", 1)
		obs.LogInfo("packet_enqueued",
			ports.Field{Key: "event_id", Value: pkt.EventID},
			ports.Field{Key: "size", Value: pkt.Size})
	}
}
