package queue

import (
	"context"
	"sync"

	"github.com/ghalamif/PacketFlow/internal/domain"
	"github.com/ghalamif/PacketFlow/internal/ports"
)

// ErrClosed is returned by Enqueue after Close, and by Dequeue once the queue
// has been closed and fully drained.
var ErrClosed = ports.ErrQueueClosed

type node struct {
	packet domain.Packet
	next   *node
}

// Bounded is a blocking FIFO queue with a fixed capacity. Two counting
// signals, implemented as buffered token channels, guard a short mutex-only
// critical section: space starts with capacity free tokens, avail starts
// empty. An enqueue reserves a space token, splices the node under the lock,
// then releases one avail token, waking at most one blocked dequeuer; a
// dequeue does the mirror image. Neither path ever holds the mutex while
// blocked on a signal.
type Bounded struct {
	mu    sync.Mutex
	head  *node
	tail  *node
	count int

	capacity int
	space    chan struct{}
	avail    chan struct{}

	closed    chan struct{}
	closeOnce sync.Once
}

func NewBounded(capacity int) *Bounded {
	if capacity <= 0 {
		capacity = 1
	}
	return &Bounded{
		capacity: capacity,
		space:    make(chan struct{}, capacity),
		avail:    make(chan struct{}, capacity),
		closed:   make(chan struct{}),
	}
}

// Enqueue appends p at the tail, blocking while the queue is full. It fails
// only when ctx is cancelled or the queue has been closed.
func (q *Bounded) Enqueue(ctx context.Context, p domain.Packet) error {
	select {
	case <-q.closed:
		return ErrClosed
	default:
	}

	select {
	case q.space <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-q.closed:
		return ErrClosed
	}

	select {
	case <-q.closed:
		// Lost the race with Close after reserving a slot; give it back.
		<-q.space
		return ErrClosed
	default:
	}

	q.push(p)
	q.avail <- struct{}{}
	return nil
}

// Dequeue removes and returns the head packet, blocking while the queue is
// empty. After Close it keeps returning buffered packets until the queue is
// drained, then reports ErrClosed.
func (q *Bounded) Dequeue(ctx context.Context) (domain.Packet, error) {
	select {
	case <-q.avail:
	default:
		select {
		case <-q.avail:
		case <-ctx.Done():
			return domain.Packet{}, ctx.Err()
		case <-q.closed:
			// Packets enqueued before the close must still drain.
			select {
			case <-q.avail:
			default:
				return domain.Packet{}, ErrClosed
			}
		}
	}

	p := q.pop()
	<-q.space
	return p, nil
}

// TryEnqueue is the non-blocking variant of Enqueue. It reports false when the
// queue is full or closed.
func (q *Bounded) TryEnqueue(p domain.Packet) bool {
	select {
	case <-q.closed:
		return false
	default:
	}

	select {
	case q.space <- struct{}{}:
	default:
		return false
	}

	q.push(p)
	q.avail <- struct{}{}
	return true
}

// TryDequeue is the non-blocking variant of Dequeue. It reports false when no
// packet is buffered.
func (q *Bounded) TryDequeue() (domain.Packet, bool) {
	select {
	case <-q.avail:
	default:
		return domain.Packet{}, false
	}

	p := q.pop()
	<-q.space
	return p, true
}

func (q *Bounded) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

func (q *Bounded) Cap() int {
	return q.capacity
}

// Close stops intake; it is safe to call more than once. Producers observe
// ErrClosed immediately, consumers drain the remaining packets first.
func (q *Bounded) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
}

func (q *Bounded) push(p domain.Packet) {
	n := &node{packet: p}
	q.mu.Lock()
	if q.tail == nil {
		q.head, q.tail = n, n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.count++
	q.mu.Unlock()
}

func (q *Bounded) pop() domain.Packet {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head == nil {
		// An avail token was granted for a packet that is not in the list.
		// The count and the signals have desynchronized, which correct
		// locking makes impossible; fail fast rather than hand out a zero
		// packet and mask the bug.
		panic("packetflow: bounded queue desynchronized, item signal with empty list")
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.count--
	return n.packet
}

var _ ports.PacketQueue = (*Bounded)(nil)
