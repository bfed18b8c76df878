package pipeline

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

// Run spawns the producer and consumer pools around the shared queue and
// blocks until shutdown completes. When ctx is cancelled the producers stop,
// the queue is closed, and the consumers drain what is left before returning,
// so no accepted packet is lost or delivered twice.
func Run(ctx context.Context, src ports.Source, q ports.PacketQueue, snk ports.Sink, pol ports.Policy, obs ports.Observability) error {
	obs.LogInfo("queue_initialized",
		ports.Field{Key: "capacity", Value: q.Cap()},
		ports.Field{Key: "producers", Value: pol.Producers},
		ports.Field{Key: "consumers", Value: pol.Consumers})

	seq := new(atomic.Uint64)

	var producers errgroup.Group
	for i := 0; i < pol.Producers; i++ {
		producers.Go(func() error {
			return runProducer(ctx, src, q, pol, seq, obs)
		})
	}

	var consumers errgroup.Group
	for i := 0; i < pol.Consumers; i++ {
		consumers.Go(func() error {
			return runConsumer(q, snk, obs)
		})
	}

	perr := producers.Wait()
	q.Close()
	cerr := consumers.Wait()

	obs.LogInfo("pipeline_stopped")
	return errors.Join(perr, cerr)
}
