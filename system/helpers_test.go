package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/vmath"
)

// newRunContext builds a context with a started run on a fixed seed and
// moderate settings, mirroring how the app wires a fresh game
func newRunContext(t *testing.T) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()

	provider := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	world := engine.NewWorld()
	ctx := engine.NewGameContext(world, provider, 120, 40)

	settings := world.Resources.Settings
	settings.Difficulty = core.DifficultyModerate
	settings.PopulationCap = constant.DefaultPopulationCap

	if !ctx.StartRun(42) {
		t.Fatal("Expected StartRun to succeed from the menu phase")
	}
	return ctx, provider
}

// tick advances game time and runs one world update, the way the app loop does
func tick(ctx *engine.GameContext, provider *engine.MockTimeProvider, dt time.Duration) {
	provider.Advance(dt)
	frame := ctx.IncrementFrameNumber()
	res := ctx.World.Resources
	res.Time.Update(ctx.PausableClock.Now(), ctx.PausableClock.RealTime(), dt, frame)
	ctx.World.Update(dt)
}

// drainEvents empties the queue, returning events in push order
func drainEvents(ctx *engine.GameContext) []event.GameEvent {
	var out []event.GameEvent
	for {
		ev, ok := ctx.ConsumeEvent()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func hasEvent(events []event.GameEvent, typ event.EventType) bool {
	for _, ev := range events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func hasSound(events []event.GameEvent, sound core.SoundType) bool {
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok && p.Sound == sound {
			return true
		}
	}
	return false
}

func findRunEnded(events []event.GameEvent) (*event.RunEndedPayload, bool) {
	for _, ev := range events {
		if ev.Type == event.EventRunEnded {
			if p, ok := ev.Payload.(*event.RunEndedPayload); ok {
				return p, true
			}
		}
	}
	return nil, false
}

// --- Entity Builders ---

func addZombie(ctx *engine.GameContext, x, y float64) core.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.SetComponent(e, component.PositionComponent{
		Pos: vmath.Vec3{X: x, Y: y, Z: constant.EnemyZ},
	})
	ctx.World.Enemies.SetComponent(e, component.EnemyComponent{
		Variant: constant.VariantBaseMin,
		Scale:   constant.VariantBaseScale,
	})
	return e
}

func addBullet(ctx *engine.GameContext, x, y float64, dir vmath.Vec2) core.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.SetComponent(e, component.PositionComponent{
		Pos: vmath.Vec3{X: x, Y: y, Z: constant.BulletZ},
	})
	ctx.World.Projectiles.SetComponent(e, component.ProjectileComponent{
		Dir:       vmath.Vec3{X: dir.X, Y: dir.Y},
		SpawnedAt: ctx.World.Resources.Time.GameTime,
	})
	return e
}

func addObstacle(ctx *engine.GameContext, x, y float64) core.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Positions.SetComponent(e, component.PositionComponent{
		Pos: vmath.Vec3{X: x, Y: y},
	})
	ctx.World.Obstacles.SetComponent(e, component.ObstacleComponent{Kind: component.ObstacleCar1})
	return e
}
