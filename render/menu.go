package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deadrun/constant"
	"github.com/lixenwraith/deadrun/engine"
	"github.com/lixenwraith/deadrun/vmath"
)

// menuScene is the horde drifting behind the main menu. It lives in cell
// coordinates, outside the simulation world, and animates on render time.
type menuScene struct {
	zombies []menuZombie
}

type menuZombie struct {
	x, y   float64 // Cell coordinates
	dx, dy float64 // Unit drift direction
	heavy  bool
}

func newMenuScene(width, height int) *menuScene {
	rng := vmath.NewRand(uint64(time.Now().UnixNano()))
	s := &menuScene{zombies: make([]menuZombie, constant.MenuZombieCount)}

	for i := range s.zombies {
		angle := rng.RangeF(0, 2*math.Pi)
		s.zombies[i] = menuZombie{
			x:     rng.RangeF(0, float64(width)),
			y:     rng.RangeF(0, float64(height)),
			dx:    math.Sin(angle),
			dy:    math.Cos(angle),
			heavy: rng.Chance(constant.MenuZombieHeavyChance),
		}
	}
	return s
}

// update drifts the horde and wraps it at the screen edges. The vertical
// step halves to match the cell aspect ratio.
func (s *menuScene) update(dt time.Duration, width, height int) {
	step := constant.ZombieSpeed / cellWorldX * constant.MenuZombieDriftFactor * dt.Seconds()
	w, h := float64(width), float64(height)
	if w < 1 || h < 1 {
		return
	}

	for i := range s.zombies {
		z := &s.zombies[i]
		z.x = math.Mod(z.x+z.dx*step, w)
		z.y = math.Mod(z.y+z.dy*step/2, h)
		if z.x < 0 {
			z.x += w
		}
		if z.y < 0 {
			z.y += h
		}
	}
}

func (s *menuScene) draw(r *Renderer, defaultStyle tcell.Style) {
	for _, z := range s.zombies {
		if z.heavy {
			r.setCell(int(z.x), int(z.y), 'Z', defaultStyle.Foreground(RgbZombieHeavy))
		} else {
			r.setCell(int(z.x), int(z.y), 'z', defaultStyle.Foreground(RgbZombie))
		}
	}
}

// drawMenu draws the title screen: drifting horde, settings, and the
// leaderboard of past runs
func (r *Renderer) drawMenu(ctx *engine.GameContext, dt time.Duration, defaultStyle tcell.Style) {
	r.fill(defaultStyle)
	r.menu.update(dt, r.width, r.height)
	r.menu.draw(r, defaultStyle)

	set := ctx.World.Resources.Settings
	audio := "on"
	if ctx.IsMuted.Load() {
		audio = "off"
	}
	god := "off"
	if set.GodMode {
		god = "on"
	}

	y := r.height/2 - 9
	if y < 1 {
		y = 1
	}

	r.drawTextCenter(y, " D E A D   R U N ", defaultStyle.Foreground(RgbTitle).Bold(true))
	r.drawTextCenter(y+1, " drive north, don't stop ", defaultStyle.Foreground(RgbMenuDim))

	entries := []struct {
		key, label string
	}{
		{"[Enter]", " start run"},
		{"[d]", fmt.Sprintf(" difficulty   %s", set.Difficulty)},
		{"[c]", fmt.Sprintf(" population   %d", set.PopulationCap)},
		{"[g]", fmt.Sprintf(" god mode     %s", god)},
		{"[m]", fmt.Sprintf(" audio        %s", audio)},
		{"[q]", " quit"},
	}

	entryX := r.width/2 - 12
	if entryX < 0 {
		entryX = 0
	}
	y += 3
	for i, e := range entries {
		x := r.drawText(entryX, y+i, e.key, defaultStyle.Foreground(RgbMenuKey))
		r.drawText(x, y+i, e.label, defaultStyle.Foreground(RgbMenuText))
	}

	r.drawScoreboard(y+len(entries)+1, defaultStyle)
}

// drawScoreboard lists the best recorded runs under the menu entries
func (r *Renderer) drawScoreboard(y int, defaultStyle tcell.Style) {
	if len(r.scoreRows) == 0 {
		return
	}

	r.drawTextCenter(y, " best runs ", defaultStyle.Foreground(RgbMenuDim))
	for i, row := range r.scoreRows {
		outcome := "lost"
		if row.Won {
			outcome = "WON"
		}
		line := fmt.Sprintf("%s  %-4s  %6d  %5.1f%%  %-8s",
			row.PlayedAt.Format("2006-01-02"), outcome, row.Score, row.Progress*100, row.Difficulty)
		r.drawTextCenter(y+1+i, line, defaultStyle.Foreground(RgbMenuText))
	}
}
