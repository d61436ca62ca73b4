package event

import (
	"sync"
	"testing"
)

// drain pops until the queue reports empty
func drain(eq *EventQueue) []GameEvent {
	var out []GameEvent
	for {
		ev, ok := eq.Consume()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// TestQueueFIFOOrder verifies single-producer events come out in push order
func TestQueueFIFOOrder(t *testing.T) {
	eq := NewEventQueue()

	for i := 0; i < 100; i++ {
		eq.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}

	events := drain(eq)
	if len(events) != 100 {
		t.Fatalf("Expected 100 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at index %d, got %d", i, i, ev.Frame)
		}
	}
}

func TestQueueConsumeEmpty(t *testing.T) {
	eq := NewEventQueue()
	if _, ok := eq.Consume(); ok {
		t.Error("Expected no event from empty queue")
	}
	if eq.Len() != 0 {
		t.Errorf("Expected zero length, got %d", eq.Len())
	}
}

func TestQueueInterleavedPushConsume(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Frame: 1})
	eq.Push(GameEvent{Frame: 2})

	ev, ok := eq.Consume()
	if !ok || ev.Frame != 1 {
		t.Fatalf("Expected frame 1, got %+v ok=%v", ev, ok)
	}

	eq.Push(GameEvent{Frame: 3})

	for want := int64(2); want <= 3; want++ {
		ev, ok = eq.Consume()
		if !ok || ev.Frame != want {
			t.Errorf("Expected frame %d, got %+v ok=%v", want, ev, ok)
		}
	}
	if _, ok = eq.Consume(); ok {
		t.Error("Expected queue drained")
	}
}

// TestQueueConcurrentProducers verifies no events are lost below capacity
func TestQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()

	var wg sync.WaitGroup
	producers := 8
	perProducer := 100

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(GameEvent{Type: EventTurboFired})
			}
		}()
	}
	wg.Wait()

	if got := len(drain(eq)); got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}

// TestQueueOverflowKeepsNewest verifies old events are overwritten, not new ones dropped
func TestQueueOverflowKeepsNewest(t *testing.T) {
	eq := NewEventQueue()

	overfill := 300
	for i := 0; i < int(queueCapacity())+overfill; i++ {
		eq.Push(GameEvent{Frame: int64(i)})
	}

	events := drain(eq)
	if len(events) == 0 {
		t.Fatal("Expected events after overflow")
	}
	last := events[len(events)-1]
	want := int64(int(queueCapacity()) + overfill - 1)
	if last.Frame != want {
		t.Errorf("Expected newest frame %d retained, got %d", want, last.Frame)
	}
	if events[0].Frame != int64(overfill) {
		t.Errorf("Expected oldest surviving frame %d, got %d", overfill, events[0].Frame)
	}
}

func queueCapacity() uint64 {
	eq := EventQueue{}
	return uint64(len(eq.events))
}
