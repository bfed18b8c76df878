package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

// runConsumer drains the queue into the sink. It deliberately ignores the
// shutdown context: packets already accepted by the queue must still be
// delivered, so the loop runs until the queue itself reports closed-and-empty.
func runConsumer(q ports.PacketQueue, snk ports.Sink, obs ports.Observability) error {
	for {
		pkt, err := q.Dequeue(context.Background())
		if errors.Is(err, ports.ErrQueueClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if !pkt.HasData() {
			continue
		}

		start := time.Now()
		if err := snk.Consume(pkt); err != nil {
			obs.IncCounter("pflow_sink_write_failed_total", 1)
			obs.LogError("sink_write_failed", err,
				ports.Field{Key: "sink", Value: snk.Name()},
				ports.Field{Key: "event_id", Value: pkt.EventID})
			continue
		}

		obs.ObserveLatency("pflow_sink_write_seconds", time.Since(start).Seconds())
		obs.IncCounter("pflow_packets_consumed_total", 1)
		obs.IncCounter("pflow_bytes_consumed_total", float64(pkt.Size))
		obs.LogInfo("packet_dequeued",
			ports.Field{Key: "event_id", Value: pkt.EventID},
			ports.Field{Key: "size", Value: pkt.Size})
	}
}
