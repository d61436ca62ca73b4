package system

import (
	"time"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/core"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/vmath"
)

// EnemySystem drives zombie pursuit toward the vehicle and retires enemies
// that fall too far behind to ever catch up
type EnemySystem struct {
	world *engine.World
}

// NewEnemySystem creates the pursuit system
func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return constant.PriorityEnemy
}

func (s *EnemySystem) Update(dt time.Duration) {
	run := s.world.Resources.Run
	if run.Road == nil || run.Rand == nil {
		return
	}

	rng := run.Rand
	carX, carY := run.Vehicle.Pos.X, run.Vehicle.Pos.Y
	step := constant.ZombieSpeed * dt.Seconds()

	var toDestroy []core.Entity

	for _, e := range s.world.Enemies.GetAllEntities() {
		pos, ok := s.world.Positions.GetComponent(e)
		if !ok {
			continue
		}

		if carY-pos.Pos.Y > constant.DespawnBehind {
			toDestroy = append(toDestroy, e)
			continue
		}

		// Enemies far ahead sometimes chase a point further up the road
		// instead of doubling back, which keeps the pack spread out
		targetY := carY
		if pos.Pos.Y-carY > constant.LeashDistance && rng.Chance(0.5) {
			targetY += rng.RangeF(constant.OvershootMin, constant.OvershootMax)
		}

		dir := vmath.V2Normalize(vmath.Vec2{X: carX - pos.Pos.X, Y: targetY - pos.Pos.Y})
		jx := rng.RangeF(-constant.ZombieJitter, constant.ZombieJitter)
		jy := rng.RangeF(-constant.ZombieJitter, constant.ZombieJitter)

		pos.Pos.X += (dir.X + jx) * step
		pos.Pos.Y += (dir.Y + jy) * step
		s.world.Positions.SetComponent(e, pos)
	}

	s.world.DestroyBatch(toDestroy)
}
