package event

import (
	"time"

	"github.com/lixenwraith/deadrun/core"
)

// EventType represents the type of game event
type EventType int

const (
	// === Run Lifecycle ===

	// EventRunEnded signals the run reached a terminal state
	// Trigger: ProgressSystem (win, wrong-way lose), CollisionSystem (health lose)
	// Consumer: app loop (scoreboard write, screen switch) | Payload: *RunEndedPayload
	EventRunEnded EventType = iota

	// === Audio ===

	// EventSoundRequest requests audio playback
	// Trigger: systems requiring audio feedback
	// Consumer: app loop (audio engine) | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Feedback ===

	// EventTurboFired signals a successful turbo trigger
	// Trigger: VehicleSystem | Consumer: app loop (audio engine) | Payload: nil
	EventTurboFired
)

// GameEvent is the queue element; Frame stamps when the event was produced
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// RunEndedPayload carries the final run summary for recording and display
type RunEndedPayload struct {
	Won      bool
	Score    uint32
	Progress float64
	Duration time.Duration
}

// SoundRequestPayload selects the effect to synthesize
type SoundRequestPayload struct {
	Sound core.SoundType
}
