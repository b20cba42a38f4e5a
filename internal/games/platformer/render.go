package platformer

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Render draws the visible slice of the level around the camera.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	s := &g.state
	vw, vh := g.Viewport()
	view := core.NewRect(s.CameraX, 0, vw, vh)

	draw := func(r core.Rect, c core.Color) {
		if r.Intersects(view) {
			dst.FillRect(r.Translate(-s.CameraX, 0), c)
		}
	}

	for _, pl := range s.Platforms {
		if !pl.Solid() {
			continue
		}
		c := core.ColorGreen
		if pl.Vanishing {
			c = core.ColorCyan
		}
		draw(pl.Rect(), c)
	}

	for _, pu := range s.PowerUps {
		if pu.Consumed {
			continue
		}
		draw(pu.Rect(), powerUpColor(pu.Kind))
	}

	draw(s.Player.Rect(), g.playerColor())

	lineH := dst.LineHeight()
	dst.DrawText(lineH, lineH/2, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	if status := g.statusText(); status != "" {
		dst.DrawText(lineH, lineH*1.5, status, core.ColorYellow)
	}

	if g.paused {
		core.DrawCenteredMessage(dst, vw, vh, "PAUSED", "Press P to resume")
	}
}

func powerUpColor(k PowerUpKind) core.Color {
	if k == PowerUpInvincibility {
		return core.ColorBrightYellow
	}
	return core.ColorBrightRed
}

// playerColor flashes while invincible.
func (g *Game) playerColor() core.Color {
	p := &g.state.Player
	if p.Invincible && (g.state.Tick/4)%2 == 0 {
		return core.ColorBrightYellow
	}
	if p.Enlarged {
		return core.ColorOrange
	}
	return core.ColorBrightBlue
}

// statusText lists the active effects with their remaining seconds.
func (g *Game) statusText() string {
	p := &g.state.Player
	text := ""
	if p.Enlarged {
		text += "BIG"
		if p.growth.Active() {
			text += fmt.Sprintf(" %ds", seconds(p.GrowthTimer()))
		}
	}
	if p.Invincible {
		if text != "" {
			text += "  "
		}
		text += "STAR"
		if p.invincible.Active() {
			text += fmt.Sprintf(" %ds", seconds(p.InvincibleTimer()))
		}
	}
	return text
}

// seconds converts frames to whole seconds at 60 frames per second, rounding up.
func seconds(frames int) int {
	return (frames + 59) / 60
}
