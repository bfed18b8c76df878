package domain

// Packet is the unit of work flowing through the PacketFlow pipeline: one
// payload buffer plus the correlation metadata attached by the producer that
// created it. A Packet is immutable after construction; ownership of the
// payload transfers to the queue on enqueue and to the consumer on dequeue.
type Packet struct {
	Payload            []byte
	Size               int
	EventID            uint64
	EventCorrelationID string
}

// HasData reports whether the packet carries a usable payload. A Size of zero
// or below is the "no data" sentinel, not an error.
func (p Packet) HasData() bool {
	return p.Size > 0
}
