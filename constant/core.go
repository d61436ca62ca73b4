package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	// One simulation tick runs per rendered frame
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyLatchWindow is how long a driving key stays held after its last
	// terminal event; keyboard autorepeat refreshes the latch
	KeyLatchWindow = 200 * time.Millisecond
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// System Execution Priorities (lower runs first)
// The order is load-bearing: vehicle physics resolves before progress and
// spawn read the new transform, and collision runs last so contacts apply
// to this tick's positions
const (
	PriorityVehicle    = 10
	PriorityProgress   = 20
	PrioritySpawn      = 30
	PriorityEnemy      = 40
	PriorityProjectile = 50
	PriorityCollision  = 60
)
