package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	packetflow "github.com/ghalamif/PacketFlow"
)

// Consumes the pipeline through a Go channel, which is handy when embedding
// PacketFlow in a service that already has its own dispatch loop.
func main() {
	flow, err := packetflow.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	snk, packets, closeSink := packetflow.NewChannelSink("channel", 256)
	defer closeSink()

	go func() {
		for p := range packets {
			log.Printf("received event %d: %s", p.EventID, p.Payload[:p.Size])
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := flow.Run(ctx, packetflow.StreamOutSink(snk)); err != nil && err != context.Canceled {
		log.Fatalf("pipeline exited: %v", err)
	}
}
