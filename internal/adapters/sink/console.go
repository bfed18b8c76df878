package sink

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// ConsoleSink prints each payload as one line tagged with the packet's event
// metadata. Writes are serialized so concurrent consumers do not interleave
// output mid-line.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Name() string { return "console" }

func (c *ConsoleSink) Consume(p domain.Packet) error {
	if !p.HasData() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, "event %d (%s) - %s\n", p.EventID, p.EventCorrelationID, p.Payload[:p.Size])
	return err
}

var _ ports.Sink = (*ConsoleSink)(nil)
