package road

import (
	"time"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/vmath"
)

type Config struct {
	Seed uint64 // Optional (0 = derived from wall clock)
}

// Generate builds a road by a constrained lateral random walk. The walk
// advances one step every SegmentLength rows, shifting the whole road at
// most one tile left or right, so consecutive segments always overlap and
// the course stays drivable end to end.
func Generate(cfg Config) *Road {
	// 1. RNG Setup
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewRand(seed)

	rowCount := constant.RoadHeight - constant.RoadStartRow + 1
	r := &Road{
		Seed:    seed,
		Tiles:   make(TileIndex, (constant.RoadWidth+1)*rowCount),
		Sprites: make([]Sprite, 0, (constant.RoadWidth+2)*rowCount),
	}

	// 2. Lateral Walk State
	// offset is the active left column, nOffset the column of the segment
	// ahead, pOffset the column of the segment behind.
	var offset, nOffset, pOffset int

	// 3. Row Sweep (bottom runway to finish)
	for j := constant.RoadStartRow; j <= constant.RoadHeight; j++ {
		isTop := j >= constant.RoadHeight-1

		// Advance the walk at segment boundaries
		if j%constant.SegmentLength == 0 && !isTop {
			pOffset = offset
			offset = nOffset
			nOffset += rng.WalkStep()
		}

		// Entering-curve shoulder on the row before a boundary, when the
		// next segment is shifted
		if (j+1)%constant.SegmentLength == 0 && !isTop {
			switch offset - nOffset {
			case 1:
				r.Sprites = append(r.Sprites, Sprite{
					Pos:  rowPos(offset-1, j, constant.CurveNudge),
					Tile: constant.TileCurveEnterL,
				})
			case -1:
				r.Sprites = append(r.Sprites, Sprite{
					Pos:  rowPos(nOffset+constant.RoadWidth, j, -constant.CurveNudge),
					Tile: constant.TileCurveEnterR,
				})
			}
		}

		// 4. Obstacles, clear of the opening stretch
		if rng.Chance(constant.ObstacleChance) && j > constant.ObstacleFreeRows {
			col := rng.Range(offset+1, offset+constant.RoadWidth-1) - 1
			r.Obstacles = append(r.Obstacles, Obstacle{
				Pos:  rowPos(col, j, 0),
				Kind: randomObstacleKind(rng),
			})
		}

		// 5. Roadside decorations, left shoulder or mirrored to the right
		if rng.Chance(constant.DecorationChance) {
			x := float64(offset-2-rng.Range(1, 2)) * constant.TileWorldSize
			if rng.Chance(0.5) {
				x += 2 * constant.RoadWidth * constant.TileWorldSize
				x += rng.RangeF(1, 3) * constant.TileWorldSize
			}
			r.Sprites = append(r.Sprites, Sprite{
				Pos:  vmath.Vec3{X: x, Y: float64(j) * constant.TileWorldSize},
				Tile: constant.TileDecoration,
			})
		}

		// Exiting-curve shoulder on the boundary row, when the segment
		// just shifted
		if j%constant.SegmentLength == 0 && !isTop {
			switch offset - pOffset {
			case 1:
				r.Sprites = append(r.Sprites, Sprite{
					Pos:  rowPos(offset-1, j, constant.CurveNudge),
					Tile: constant.TileCurveExitL,
				})
			case -1:
				r.Sprites = append(r.Sprites, Sprite{
					Pos:  rowPos(offset+1+constant.RoadWidth, j, -constant.CurveNudge),
					Tile: constant.TileCurveExitR,
				})
			}
		}

		// 6. Surface Tiles
		// Every row, including the capped top rows, contributes to the
		// drivable index.
		for i := 0; i <= constant.RoadWidth; i++ {
			tile := constant.TileRoadInterior
			switch i {
			case 0:
				tile = constant.TileRoadEdge
			case constant.RoadWidth:
				tile = constant.TileRoadEdgeAlt
			}
			col := i + offset
			r.Tiles[TileCoord{Col: col, Row: j}] = struct{}{}
			r.Sprites = append(r.Sprites, Sprite{
				Pos:  rowPos(col, j, 0),
				Tile: tile,
			})
		}

		// 7. Finish Cap, painted over the top two rows
		if isTop {
			for a := 0; a <= constant.RoadWidth; a++ {
				r.Sprites = append(r.Sprites, Sprite{
					Pos:  rowPos(offset+a, j, 0),
					Tile: constant.TileFinishCap,
				})
			}
		}
	}

	return r
}

// --- Helpers ---

// rowPos converts tile coordinates to a world position with an optional
// x adjustment in world units
func rowPos(col, row int, xNudge float64) vmath.Vec3 {
	return vmath.Vec3{
		X: float64(col)*constant.TileWorldSize + xNudge,
		Y: float64(row) * constant.TileWorldSize,
	}
}

// randomObstacleKind picks a wreck type, biased toward the mixed pool
func randomObstacleKind(rng *vmath.Rand) component.ObstacleKind {
	if rng.Chance(0.7) {
		switch rng.Intn(3) {
		case 0:
			return component.ObstacleCar1
		case 1:
			return component.ObstacleCar2
		}
	}
	return component.ObstacleCar3
}
