package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	packetflow "github.com/ghalamif/PacketFlow"
)

// Routes every consumed packet into a plain function instead of the default
// console sink.
func main() {
	flow, err := packetflow.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = flow.Run(ctx, packetflow.StreamOutCallback("printer", func(p packetflow.Packet) error {
		log.Printf("event %d (%s): %d bytes", p.EventID, p.EventCorrelationID, p.Size)
		return nil
	}))
	if err != nil && err != context.Canceled {
		log.Fatalf("pipeline exited: %v", err)
	}
}
