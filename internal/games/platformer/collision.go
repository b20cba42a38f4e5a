package platformer

import "github.com/vovakirdan/canvas-arcade/internal/core"

// landsOn reports whether a body that moved by vy this frame came down onto
// the top of platform. The body must overlap the platform with its bottom
// past the top edge, must have been at or above that edge before the move,
// and must not be moving up.
func landsOn(body core.Rect, vy float64, platform core.Rect) bool {
	top := platform.Y
	bottom := body.Bottom()
	return body.Intersects(platform) &&
		bottom > top &&
		bottom-vy <= top &&
		vy >= 0
}

// resolvePlatforms lands the player on a matching platform. Every solid
// platform is tested against the same post-move body; when several match the
// last one in slice order wins. It reports whether the player landed.
func resolvePlatforms(p *Player, platforms []Platform) bool {
	body := p.Rect()
	vy := p.VY

	landed := false
	var top float64
	for i := range platforms {
		pl := &platforms[i]
		if !pl.Solid() {
			continue
		}
		if landsOn(body, vy, pl.Rect()) {
			landed = true
			top = pl.Y
		}
	}

	if landed {
		p.Y = top - p.H
		p.VY = 0
		p.Grounded = true
	}
	return landed
}

// collectPowerUps consumes every unconsumed pickup the player overlaps and
// returns them in slice order. Consumed pickups never match again.
func collectPowerUps(p *Player, powerUps []PowerUp) []PowerUpKind {
	body := p.Rect()

	var taken []PowerUpKind
	for i := range powerUps {
		pu := &powerUps[i]
		if pu.Consumed {
			continue
		}
		if body.Intersects(pu.Rect()) {
			pu.Consumed = true
			taken = append(taken, pu.Kind)
		}
	}
	return taken
}
