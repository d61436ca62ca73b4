package event

import (
	"sync/atomic"

	"github.com/lixenwraith/deadrun/constant"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (game loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events    [constant.EventQueueSize]GameEvent
	published [constant.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                        // Read index
	tail      atomic.Uint64                        // Write index
}

func NewEventQueue() *EventQueue {
	eq := &EventQueue{}
	eq.head.Store(0)
	eq.tail.Store(0)
	return eq
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & constant.EventBufferMask

			eq.events[idx] = event
			eq.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > constant.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-constant.EventQueueSize)
			}
			return
		}
	}
}

// Consume removes and returns the oldest event in FIFO order
// Single-consumer design (game loop); ok is false when the queue is empty
// or the oldest slot is still being written
func (eq *EventQueue) Consume() (GameEvent, bool) {
	for {
		currentHead := eq.head.Load()
		currentTail := eq.tail.Load()

		if currentTail == currentHead {
			return GameEvent{}, false
		}

		// Producers lapped the reader; jump to the oldest surviving slot
		if currentTail-currentHead > constant.EventQueueSize {
			eq.head.CompareAndSwap(currentHead, currentTail-constant.EventQueueSize)
			continue
		}

		idx := currentHead & constant.EventBufferMask
		if !eq.published[idx].Load() {
			return GameEvent{}, false // Producer mid-write
		}

		// Claim the slot before reading; a failed swap means an overflow
		// advance won the race
		if !eq.head.CompareAndSwap(currentHead, currentHead+1) {
			continue
		}

		ev := eq.events[idx]
		eq.published[idx].Store(false)
		return ev, true
	}
}

// Len returns the approximate pending event count; exact only while no
// producer is mid-push
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > constant.EventQueueSize {
		return constant.EventQueueSize
	}
	return diff
}
