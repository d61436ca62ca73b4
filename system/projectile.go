package system

import (
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/event"
	"github.com/lixenwraith/deadrun/vmath"
)

// ProjectileSystem fires bullets at a fixed cadence while the trigger is
// held, flies them along their spawn direction, and expires the ones that
// never connect. Bullets are not consumed by hits; only age removes them
type ProjectileSystem struct {
	world *engine.World

	sinceLastShot time.Duration
}

// NewProjectileSystem creates the bullet lifecycle system
func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return constant.PriorityProjectile
}

func (s *ProjectileSystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil {
		return
	}

	now := s.world.Resources.Time.GameTime
	step := constant.BulletSpeed * dt.Seconds()

	var toDestroy []core.Entity

	for _, e := range s.world.Projectiles.GetAllEntities() {
		proj, ok := s.world.Projectiles.GetComponent(e)
		if !ok {
			continue
		}
		if now.Sub(proj.SpawnedAt) > constant.BulletLifetime {
			toDestroy = append(toDestroy, e)
			continue
		}

		pos, ok := s.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		pos.Pos.X += proj.Dir.X * step
		pos.Pos.Y += proj.Dir.Y * step
		s.world.Positions.SetComponent(e, pos)
	}

	s.world.DestroyBatch(toDestroy)

	// Firing after movement keeps a fresh bullet at the muzzle for one tick
	s.sinceLastShot += dt
	input := s.world.Resources.Input
	if input.FireHeld && s.sinceLastShot >= constant.BulletSpawnInterval {
		s.sinceLastShot = 0
		s.fire(run.Vehicle, input, now)
	}
}

// fire spawns one bullet at the vehicle aimed at the pointer target, or
// along the vehicle's forward vector when no aim is set
func (s *ProjectileSystem) fire(v *component.Vehicle, input *engine.InputResource, now time.Time) {
	var dir vmath.Vec2
	if input.HasAim {
		dir = vmath.V2Normalize(vmath.Vec2{X: input.AimX - v.Pos.X, Y: input.AimY - v.Pos.Y})
	}
	if dir.X == 0 && dir.Y == 0 {
		dir = vmath.RotateForward(v.Rotation)
	}

	e := s.world.CreateEntity()
	s.world.Positions.SetComponent(e, component.PositionComponent{
		Pos: vmath.Vec3{X: v.Pos.X, Y: v.Pos.Y, Z: constant.BulletZ},
	})
	s.world.Projectiles.SetComponent(e, component.ProjectileComponent{
		Dir:       vmath.Vec3{X: dir.X, Y: dir.Y},
		SpawnedAt: now,
	})

	s.world.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{Sound: core.SoundShot})
}
