// Package input feeds the framebuffer viewer's event loop. It stands in for
// the event queue a window system would otherwise provide.
package input

import (
	"sync"

	"golang.org/x/mobile/event/lifecycle"
)

// Logger is the component-tagged logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Sender accepts events. Queue satisfies it.
type Sender interface {
	Send(e interface{})
}

// Queue is an unbounded FIFO of events. Send never blocks, so the loop may
// send to its own queue. It is safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	events []interface{}
	closed bool
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Send appends e. Events sent after Close are dropped.
func (q *Queue) Send(e interface{}) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.events = append(q.events, e)
	q.cond.Signal()
}

// NextEvent blocks until an event is available. Once the queue is closed and
// drained it returns a lifecycle event to StageDead on every call.
func (q *Queue) NextEvent() interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.events) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.events) == 0 {
		return lifecycle.Event{From: lifecycle.StageFocused, To: lifecycle.StageDead}
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e
}

// Close wakes any waiting reader. Events already queued are still delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
