package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/vmath"
)

type recordingSystem struct {
	name     string
	priority int
	order    *[]string
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(dt time.Duration) {
	*s.order = append(*s.order, s.name)
}

// TestEntityIDsUnique verifies CreateEntity never reuses live IDs
func TestEntityIDsUnique(t *testing.T) {
	world := NewWorld()

	seen := make(map[core.Entity]bool)
	for i := 0; i < 1000; i++ {
		e := world.CreateEntity()
		if e == 0 {
			t.Fatal("CreateEntity returned the null entity")
		}
		if seen[e] {
			t.Fatalf("Duplicate entity ID %d", e)
		}
		seen[e] = true
	}
}

// TestDestroyEntityRemovesAllComponents verifies destruction spans every store
func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.Positions.SetComponent(e, component.PositionComponent{Pos: vmath.Vec3{X: 1, Y: 2}})
	world.Enemies.SetComponent(e, component.EnemyComponent{Variant: 31})
	world.Projectiles.SetComponent(e, component.ProjectileComponent{})
	world.Obstacles.SetComponent(e, component.ObstacleComponent{})

	world.DestroyEntity(e)

	if world.Positions.HasEntity(e) || world.Enemies.HasEntity(e) ||
		world.Projectiles.HasEntity(e) || world.Obstacles.HasEntity(e) {
		t.Error("Expected all components removed after destroy")
	}
}

// TestDestroyBatch verifies batch destruction leaves survivors intact
func TestDestroyBatch(t *testing.T) {
	world := NewWorld()

	var doomed, survivors []core.Entity
	for i := 0; i < 10; i++ {
		e := world.CreateEntity()
		world.Positions.SetComponent(e, component.PositionComponent{})
		world.Enemies.SetComponent(e, component.EnemyComponent{Variant: 30 + i})
		if i%2 == 0 {
			doomed = append(doomed, e)
		} else {
			survivors = append(survivors, e)
		}
	}

	world.DestroyBatch(doomed)

	for _, e := range doomed {
		if world.Enemies.HasEntity(e) {
			t.Errorf("Expected entity %d destroyed", e)
		}
	}
	for _, e := range survivors {
		if !world.Enemies.HasEntity(e) {
			t.Errorf("Expected entity %d to survive", e)
		}
	}
}

// TestWorldClear verifies Clear resets stores and the ID counter
func TestWorldClear(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.Positions.SetComponent(e, component.PositionComponent{})
	world.Clear()

	if world.Positions.CountEntities() != 0 {
		t.Error("Expected empty position store after clear")
	}
	if next := world.CreateEntity(); next != 1 {
		t.Errorf("Expected ID counter reset to 1, got %d", next)
	}
}

// TestSystemPriorityOrdering verifies systems run lowest priority first
func TestSystemPriorityOrdering(t *testing.T) {
	world := NewWorld()

	var order []string
	world.AddSystem(&recordingSystem{name: "collision", priority: 60, order: &order})
	world.AddSystem(&recordingSystem{name: "vehicle", priority: 10, order: &order})
	world.AddSystem(&recordingSystem{name: "spawn", priority: 30, order: &order})
	world.AddSystem(&recordingSystem{name: "enemy", priority: 40, order: &order})

	world.Update(16 * time.Millisecond)

	expected := []string{"vehicle", "spawn", "enemy", "collision"}
	if len(order) != len(expected) {
		t.Fatalf("Expected %d system runs, got %d", len(expected), len(order))
	}
	for i, name := range expected {
		if order[i] != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, order[i])
		}
	}
}

// TestPushEventStampsFrame verifies events carry the live frame number
func TestPushEventStampsFrame(t *testing.T) {
	world := NewWorld()
	queue := event.NewEventQueue()
	var frame atomic.Int64
	world.SetEventMetadata(queue, &frame)

	frame.Store(77)
	world.PushEvent(event.EventTurboFired, nil)

	ev, ok := queue.Consume()
	if !ok {
		t.Fatal("Expected event in queue")
	}
	if ev.Type != event.EventTurboFired {
		t.Errorf("Expected turbo event, got %v", ev.Type)
	}
	if ev.Frame != 77 {
		t.Errorf("Expected frame stamp 77, got %d", ev.Frame)
	}
}

// TestPushEventBeforeWiring verifies PushEvent is safe before initialization
func TestPushEventBeforeWiring(t *testing.T) {
	world := NewWorld()
	// Must not panic
	world.PushEvent(event.EventTurboFired, nil)
}
