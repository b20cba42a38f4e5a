package pong

import (
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// paddleVelocity translates a pair of held actions into a paddle velocity.
// Velocity is set each frame, not accumulated; opposing keys cancel out.
func paddleVelocity(in core.InputFrame, up, down core.Action, speed float64) float64 {
	var vy float64
	if in.Has(up) {
		vy -= speed
	}
	if in.Has(down) {
		vy += speed
	}
	return vy
}

// movePaddle integrates a paddle and keeps it inside the court.
func (g *Game) movePaddle(p *Paddle) {
	p.Y += p.VY
	p.Y = core.ClampF(p.Y, 0, g.cfg.World.Height-p.H)
}

// moveBall integrates the ball.
func (g *Game) moveBall() {
	b := &g.state.Ball
	b.X += b.VX
	b.Y += b.VY
}

// bounceWalls reflects the ball off the top and bottom walls and places it
// flush against the wall it hit.
func (g *Game) bounceWalls() {
	b := &g.state.Ball
	h := g.cfg.World.Height

	if b.Y <= 0 || b.Y+b.Size >= h {
		b.VY = -b.VY
		if b.Y <= 0 {
			b.Y = 0
		} else {
			b.Y = h - b.Size
		}
	}
}

// bouncePaddles sends the ball away from whichever paddle it overlaps.
// The horizontal speed keeps its magnitude and points away from the paddle;
// a fraction of the paddle's own velocity is added to the ball's vertical
// velocity.
func (g *Game) bouncePaddles() {
	b := &g.state.Ball
	left, right := &g.state.Left, &g.state.Right
	carry := g.cfg.Ball.PaddleCarry

	if left.Rect().Intersects(b.Rect()) {
		b.VX = core.AbsF(b.VX)
		b.X = left.X + left.W
		b.VY += left.VY * carry
	}
	if right.Rect().Intersects(b.Rect()) {
		b.VX = -core.AbsF(b.VX)
		b.X = right.X - b.Size
		b.VY += right.VY * carry
	}
}

// resolveScore awards a point when the ball leaves the court sideways and
// serves again. It returns the side that scored, or SideNone.
func (g *Game) resolveScore() Side {
	b := &g.state.Ball

	switch {
	case b.X < 0:
		g.state.ScoreRight++
		g.serve(1)
		g.checkWinner(SideRight, g.state.ScoreRight)
		return SideRight
	case b.X > g.cfg.World.Width:
		g.state.ScoreLeft++
		g.serve(-1)
		g.checkWinner(SideLeft, g.state.ScoreLeft)
		return SideLeft
	}
	return SideNone
}

// checkWinner ends the match once a side reaches the configured win score.
func (g *Game) checkWinner(side Side, score int) {
	if g.cfg.Gameplay.WinScore > 0 && score >= g.cfg.Gameplay.WinScore {
		g.state.GameOver = true
		g.state.Winner = side
	}
}

// serve recenters the ball with a fixed horizontal speed in direction dir
// (+1 right, -1 left) and a freshly drawn vertical speed.
func (g *Game) serve(dir float64) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	b := &g.state.Ball

	b.X = w/2 - b.Size/2
	b.Y = h/2 - b.Size/2
	b.VX = dir * g.cfg.Ball.ServeSpeed
	b.VY = g.randomVY()
}

// randomVY draws a vertical speed uniformly from [-spread/2, spread/2).
func (g *Game) randomVY() float64 {
	return (g.rng.Float64() - 0.5) * g.cfg.Ball.ServeSpread
}

// randomDirection picks the opening serve direction.
func (g *Game) randomDirection() float64 {
	if g.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
