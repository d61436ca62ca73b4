package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/component"
	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/road"
	"github.com/lixenwraith/deadrun/vmath"
)

// Vehicle heading arrows indexed by octant, clockwise from north
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// drawWorld draws the simulation viewport: terrain and road surface first,
// then dressing, then entities in depth order
func (r *Renderer) drawWorld(ctx *engine.GameContext, defaultStyle tcell.Style) {
	if ctx.Road == nil {
		r.fill(defaultStyle)
		return
	}
	cam := ctx.World.Resources.Camera

	r.drawSurface(ctx.Road, cam, defaultStyle)
	r.drawDressing(ctx.Road, cam, defaultStyle)
	r.drawObstacles(ctx.World, cam, defaultStyle)
	r.drawEnemies(ctx.World, cam)
	r.drawVehicle(ctx.Vehicle, cam, defaultStyle)
	r.drawProjectiles(ctx.World, cam)
}

// drawSurface paints terrain and asphalt by sampling the tile index at
// every cell center. A road cell whose horizontal neighbor falls off the
// surface gets the painted edge line, which keeps the line one cell wide
// at any zoom.
func (r *Renderer) drawSurface(rd *road.Road, cam *engine.CameraResource, defaultStyle tcell.Style) {
	surface := defaultStyle.Background(RgbRoadSurface)
	edge := surface.Foreground(RgbRoadEdge)

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			wx, wy := r.cellToWorld(cam, x, y)
			col := int(math.Floor(wx / constant.TileWorldSize))
			row := int(math.Floor(wy / constant.TileWorldSize))
			if !rd.Tiles.Contains(col, row) {
				r.screen.SetContent(x, y, ' ', nil, defaultStyle)
				continue
			}

			lx, _ := r.cellToWorld(cam, x-1, y)
			rx, _ := r.cellToWorld(cam, x+1, y)
			switch {
			case !rd.Tiles.Contains(int(math.Floor(lx/constant.TileWorldSize)), row):
				r.screen.SetContent(x, y, '▏', nil, edge)
			case !rd.Tiles.Contains(int(math.Floor(rx/constant.TileWorldSize)), row):
				r.screen.SetContent(x, y, '▕', nil, edge)
			default:
				r.screen.SetContent(x, y, ' ', nil, surface)
			}
		}
	}
}

// drawDressing draws the sparse sprite overlays: curve shoulders, roadside
// decorations, and the finish cap. Surface tiles come from the index pass
// and are skipped here.
func (r *Renderer) drawDressing(rd *road.Road, cam *engine.CameraResource, defaultStyle tcell.Style) {
	const half = constant.TileWorldSize / 2.0

	for _, sp := range rd.Sprites {
		switch sp.Tile {
		case constant.TileRoadEdge, constant.TileRoadInterior, constant.TileRoadEdgeAlt:
			continue

		case constant.TileFinishCap:
			r.drawFinishTile(sp.Pos, cam, defaultStyle)

		case constant.TileDecoration:
			x, y := r.worldToCell(cam, sp.Pos.X+half, sp.Pos.Y+half)
			r.overlayCell(x, y, '♣', RgbDecoration, false)

		case constant.TileCurveEnterL, constant.TileCurveExitR:
			x, y := r.worldToCell(cam, sp.Pos.X+half, sp.Pos.Y+half)
			r.overlayCell(x, y, '╲', RgbRoadCurve, false)

		case constant.TileCurveEnterR, constant.TileCurveExitL:
			x, y := r.worldToCell(cam, sp.Pos.X+half, sp.Pos.Y+half)
			r.overlayCell(x, y, '╱', RgbRoadCurve, false)
		}
	}
}

// drawFinishTile fills one finish-cap tile with a checkered pattern
func (r *Renderer) drawFinishTile(pos vmath.Vec3, cam *engine.CameraResource, defaultStyle tcell.Style) {
	x0, y0 := r.worldToCell(cam, pos.X, pos.Y+constant.TileWorldSize)
	x1, y1 := r.worldToCell(cam, pos.X+constant.TileWorldSize, pos.Y)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			bg := RgbFinishLight
			if (x+y)%2 == 0 {
				bg = RgbFinishDark
			}
			r.setCell(x, y, ' ', defaultStyle.Background(bg))
		}
	}
}

// drawObstacles fills each wreck's collision footprint with its hull color
func (r *Renderer) drawObstacles(world *engine.World, cam *engine.CameraResource, defaultStyle tcell.Style) {
	box := constant.ObstacleHitBox

	for _, e := range world.Obstacles.GetAllEntities() {
		obs, ok := world.Obstacles.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := world.Positions.GetComponent(e)
		if !ok {
			continue
		}

		style := defaultStyle.Background(wreckColor(obs.Kind))
		x0, y0 := r.worldToCell(cam, pos.Pos.X-box, pos.Pos.Y+box)
		x1, y1 := r.worldToCell(cam, pos.Pos.X+box, pos.Pos.Y-box)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.setCell(x, y, ' ', style)
			}
		}
	}
}

func (r *Renderer) drawEnemies(world *engine.World, cam *engine.CameraResource) {
	for _, e := range world.Enemies.GetAllEntities() {
		enemy, ok := world.Enemies.GetComponent(e)
		if !ok {
			continue
		}
		pos, ok := world.Positions.GetComponent(e)
		if !ok {
			continue
		}

		x, y := r.worldToCell(cam, pos.Pos.X, pos.Pos.Y)
		if enemy.Heavy {
			r.overlayCell(x, y, 'Z', RgbZombieHeavy, true)
		} else {
			r.overlayCell(x, y, 'z', RgbZombie, false)
		}
	}
}

// drawVehicle draws the car as a heading arrow. While the boost window is
// live the cell flares orange.
func (r *Renderer) drawVehicle(v *component.Vehicle, cam *engine.CameraResource, defaultStyle tcell.Style) {
	x, y := r.worldToCell(cam, v.Pos.X, v.Pos.Y)
	glyph := vehicleGlyph(v.Rotation)

	if v.TurboElapsed < constant.TurboWindow {
		r.setCell(x, y, glyph, defaultStyle.Background(RgbCarTurbo).Foreground(RgbStatusText).Bold(true))
		return
	}
	r.overlayCell(x, y, glyph, RgbCar, true)
}

func (r *Renderer) drawProjectiles(world *engine.World, cam *engine.CameraResource) {
	for _, e := range world.Projectiles.GetAllEntities() {
		pos, ok := world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		x, y := r.worldToCell(cam, pos.Pos.X, pos.Pos.Y)
		r.overlayCell(x, y, '•', RgbBullet, true)
	}
}

// vehicleGlyph picks the arrow for the heading octant
func vehicleGlyph(rotation float64) rune {
	f := vmath.RotateForward(rotation)
	octant := int(math.Round(math.Atan2(f.X, f.Y) / (math.Pi / 4)))
	return headingGlyphs[((octant%8)+8)%8]
}

// wreckColor maps an obstacle kind to its hull color
func wreckColor(kind component.ObstacleKind) tcell.Color {
	switch kind {
	case component.ObstacleCar1:
		return RgbWreckRust
	case component.ObstacleCar2:
		return RgbWreckSlate
	default:
		return RgbWreckBurnt
	}
}
