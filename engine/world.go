package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/event"
)

// System is the interface all simulation systems implement
// Update receives the frame delta in game time; lower Priority runs first
type System interface {
	Name() string
	Priority() int
	Update(dt time.Duration)
}

// World contains all entities and their components using typed stores
// Enemies, projectiles, and obstacles are id-indexed arenas; the vehicle
// lives on the GameContext as a single struct
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Singleton resources, initialized by GameContext
	Resources *Resource

	// Typed component stores
	Positions   *Store[component.PositionComponent]
	Enemies     *Store[component.EnemyComponent]
	Projectiles *Store[component.ProjectileComponent]
	Obstacles   *Store[component.ObstacleComponent]

	// Direct pointers for high-frequency path optimization
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with empty stores
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Resources:    NewResource(),
		Positions:    NewStore[component.PositionComponent](),
		Enemies:      NewStore[component.EnemyComponent](),
		Projectiles:  NewStore[component.ProjectileComponent](),
		Obstacles:    NewStore[component.ObstacleComponent](),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	w.Positions.RemoveEntity(e)
	w.Enemies.RemoveEntity(e)
	w.Projectiles.RemoveEntity(e)
	w.Obstacles.RemoveEntity(e)
}

// DestroyBatch removes many entities from every store in one pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	w.Positions.RemoveBatch(entities)
	w.Enemies.RemoveBatch(entities)
	w.Projectiles.RemoveBatch(entities)
	w.Obstacles.RemoveBatch(entities)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	w.Positions.ClearAllComponents()
	w.Enemies.ClearAllComponents()
	w.Projectiles.ClearAllComponents()
	w.Obstacles.ClearAllComponents()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs all systems assuming the caller already holds the update lock
func (w *World) UpdateLocked(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(dt)
	}
}

// SetEventMetadata wires the direct pointers for PushEvent optimization
// Called once during GameContext initialization
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits a game event using direct cached pointers
// This is the hot-path for system-to-app communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil || w.frameSource == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}
