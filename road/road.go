package road

import (
	"math"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/vmath"
)

// TileCoord addresses a tile on the road grid. World position divided by
// TileWorldSize yields tile coordinates.
type TileCoord struct {
	Col, Row int
}

// TileIndex is the set of drivable tiles keyed by grid coordinate
type TileIndex map[TileCoord]struct{}

// Contains reports whether the grid coordinate is part of the road surface
func (ti TileIndex) Contains(col, row int) bool {
	_, ok := ti[TileCoord{Col: col, Row: row}]
	return ok
}

// OnRoad reports whether a world position sits on the drivable surface.
// The position is tested at both the ceiling and floor of its tile
// coordinates so a vehicle straddling a tile boundary still counts.
func (ti TileIndex) OnRoad(pos vmath.Vec3) bool {
	x := pos.X / constant.TileWorldSize
	y := pos.Y / constant.TileWorldSize
	if ti.Contains(int(math.Ceil(x)), int(math.Ceil(y))) {
		return true
	}
	return ti.Contains(int(math.Floor(x)), int(math.Floor(y)))
}

// Sprite is a static piece of road dressing at a fixed world position:
// surface tiles, curve shoulders, decorations, and the finish cap.
// Sprites are drawn in slice order; later entries paint over earlier ones.
type Sprite struct {
	Pos  vmath.Vec3
	Tile int
}

// Obstacle is a wrecked vehicle blocking part of a lane. Obstacles become
// world entities when a run starts.
type Obstacle struct {
	Pos  vmath.Vec3
	Kind component.ObstacleKind
}

// Road is one generated course: the drivable tile set, the static sprites
// to draw, and the obstacle placements
type Road struct {
	Seed      uint64
	Tiles     TileIndex
	Sprites   []Sprite
	Obstacles []Obstacle
}
