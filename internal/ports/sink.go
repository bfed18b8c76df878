package ports

import "github.com/ghalamif/PacketFlow/internal/domain"

// Sink consumes dequeued packets and forwards them downstream. Implementations
// must not retain the payload past the call; ownership returns to the caller.
type Sink interface {
	Consume(p domain.Packet) error
	Name() string
}
