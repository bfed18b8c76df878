package packetflow

import (
	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// Packet is the unit of work flowing through the pipeline. It is exported so
// custom sources and sinks can reference it directly.
type Packet = domain.Packet

// PacketQueue is the bounded, in-memory queue that decouples the producer and
// consumer pools.
type PacketQueue = ports.PacketQueue

// Source yields payload bytes for the producer pool.
type Source = ports.Source

// Sink consumes dequeued packets and forwards them downstream.
type Sink = ports.Sink

// Observability emits metrics/logs about throughput, latency, and errors.
type Observability = ports.Observability

// EventLog is the best-effort append-only text log.
type EventLog = ports.EventLog

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// Policy carries the runtime tunables of the pipeline.
type Policy = ports.Policy

// ErrQueueClosed is the terminal result once the queue is closed and drained.
var ErrQueueClosed = ports.ErrQueueClosed
