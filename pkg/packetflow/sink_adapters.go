package packetflow

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ghalamif/PacketFlow/internal/domain"
)

// ErrChannelSinkClosed is returned when a channel sink is written to after
// being closed.
var ErrChannelSinkClosed = errors.New("packetflow: channel sink closed")

// PacketSink is invoked with each packet dequeued from the pipeline.
type PacketSink func(Packet) error

// NewCallbackSink adapts a PacketSink into a full ports.Sink implementation so
// callers can plug arbitrary functions without defining structs.
func NewCallbackSink(name string, fn PacketSink) Sink {
	if name == "" {
		name = "callback"
	}
	return &callbackSink{name: name, fn: fn}
}

// NewChannelSink exposes packets via a channel; it returns the sink, the
// read-only channel, and a close function that the caller should invoke during
// shutdown.
func NewChannelSink(name string, buffer int) (Sink, <-chan Packet, func()) {
	if name == "" {
		name = "channel"
	}
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan Packet, buffer)
	s := &channelSink{
		name:   name,
		ch:     ch,
		closed: make(chan struct{}),
	}
	return s, ch, func() { s.close() }
}

type callbackSink struct {
	name string
	fn   PacketSink
}

func (s *callbackSink) Consume(p domain.Packet) error {
	if s.fn == nil {
		return fmt.Errorf("callback sink %q: nil handler", s.name)
	}
	return s.fn(p)
}

func (s *callbackSink) Name() string { return s.name }

type channelSink struct {
	name   string
	ch     chan Packet
	closed chan struct{}
	once   sync.Once
}

func (s *channelSink) Consume(p domain.Packet) error {
	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	default:
	}

	select {
	case <-s.closed:
		return ErrChannelSinkClosed
	case s.ch <- p:
		return nil
	}
}

func (s *channelSink) Name() string { return s.name }

func (s *channelSink) close() {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})
}
