package pong

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Side identifies a player's half of the court.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// Paddle is a vertical bat. VY is the velocity applied this frame, kept so a
// hit can pass some of it to the ball.
type Paddle struct {
	X, Y float64
	W, H float64
	VY   float64
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Ball is a square ball. X and Y are its top-left corner.
type Ball struct {
	X, Y   float64
	Size   float64
	VX, VY float64
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// State is the complete simulation state of one match. It is owned by Game;
// renderers get a copy.
type State struct {
	Left       Paddle
	Right      Paddle
	Ball       Ball
	ScoreLeft  int
	ScoreRight int
	Winner     Side
	GameOver   bool
	Tick       uint64
}

// check panics on any non-finite position or velocity.
func (s *State) check() {
	core.MustFinite("left paddle", s.Left.X, s.Left.Y, s.Left.VY)
	core.MustFinite("right paddle", s.Right.X, s.Right.Y, s.Right.VY)
	core.MustFinite("ball", s.Ball.X, s.Ball.Y, s.Ball.VX, s.Ball.VY)
}
