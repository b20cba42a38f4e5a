package platformer

import (
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// applyInput sets horizontal velocity from the held direction keys and starts
// a jump when the player stood on something last frame.
func (g *Game) applyInput(p *Player, in core.InputFrame) {
	speed := g.cfg.Physics.MoveSpeed

	p.VX = 0
	if in.Has(core.ActionMoveLeft) {
		p.VX -= speed
	}
	if in.Has(core.ActionMoveRight) {
		p.VX += speed
	}

	if in.Has(core.ActionJump) && p.Grounded {
		jump := g.cfg.Physics.JumpVelocity
		if p.Enlarged {
			jump *= g.cfg.Effects.GrowthJumpBoost
		}
		p.VY = jump
		p.Grounded = false
	}
}

// clampToWorld keeps the player inside the level. Reaching the floor grounds
// the player; hitting the ceiling stops upward motion.
func (g *Game) clampToWorld(p *Player) {
	w, h := g.cfg.World.Width, g.cfg.World.Height

	p.X = core.ClampF(p.X, 0, w-p.W)

	if p.Y < 0 {
		p.Y = 0
		if p.VY < 0 {
			p.VY = 0
		}
	}
	if p.Y+p.H >= h {
		p.Y = h - p.H
		p.VY = 0
		p.Grounded = true
	}
}

// updatePlatforms derives this frame's visibility of every vanishing
// platform from its timer, then advances the timer.
func (g *Game) updatePlatforms() {
	period := g.cfg.Effects.VanishPeriod
	for i := range g.state.Platforms {
		pl := &g.state.Platforms[i]
		if !pl.Vanishing {
			continue
		}
		pl.Visible = VisibleAt(pl.Timer, period)
		pl.Timer++
	}
}

// applyPowerUps consumes touched pickups, applies their effects and awards
// points. It reports whether the score changed.
func (g *Game) applyPowerUps(p *Player) bool {
	taken := collectPowerUps(p, g.state.PowerUps)
	for _, kind := range taken {
		switch kind {
		case PowerUpGrowth:
			g.grow(p)
		case PowerUpInvincibility:
			p.Invincible = true
			p.invincible.Start(g.cfg.Effects.InvincibleFrames)
		}
		g.state.Score += g.cfg.PowerUps.Score
	}
	return len(taken) > 0
}

// grow enlarges the player, or extends the enlarged state when already big.
func (g *Game) grow(p *Player) {
	if !p.Enlarged {
		scale := g.cfg.Effects.GrowthScale
		g.resize(p, g.cfg.Player.Width*scale, g.cfg.Player.Height*scale)
		p.Enlarged = true
	}
	p.growth.Start(g.cfg.Effects.GrowthFrames)
}

// shrink returns the player to the base size.
func (g *Game) shrink(p *Player) {
	g.resize(p, g.cfg.Player.Width, g.cfg.Player.Height)
	p.Enlarged = false
}

// resize changes the player's size keeping the bottom edge and horizontal
// center in place.
func (g *Game) resize(p *Player, w, h float64) {
	cx := p.X + p.W/2
	bottom := p.Y + p.H

	p.W, p.H = w, h
	p.X = cx - w/2
	p.Y = bottom - h
	g.clampToWorld(p)
}

// tickEffects advances the effect countdowns. A countdown started this frame
// keeps its full duration until the next frame. A zero duration never
// expires, so the effect lasts until restart.
func (g *Game) tickEffects(p *Player) {
	if p.invincible.Tick() {
		p.Invincible = false
	}
	if p.growth.Tick() {
		g.shrink(p)
	}
}

// updateCamera centers the view on the player, stopping at the level edges.
func (g *Game) updateCamera() {
	p := &g.state.Player
	maxX := max(g.cfg.World.Width-g.cfg.World.ViewWidth, 0)
	g.state.CameraX = core.ClampF(p.X+p.W/2-g.cfg.World.ViewWidth/2, 0, maxX)
}
