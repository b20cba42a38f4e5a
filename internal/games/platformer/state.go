package platformer

import (
	"slices"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// PowerUpKind represents the effect a pickup grants.
type PowerUpKind int

const (
	PowerUpGrowth        PowerUpKind = iota // Enlarges the player, boosting jumps
	PowerUpInvincibility                    // Star
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpGrowth:
		return "Growth"
	case PowerUpInvincibility:
		return "Invincibility"
	default:
		return "?"
	}
}

// Player is the controllable character. X and Y are the top-left corner.
type Player struct {
	X, Y       float64
	W, H       float64
	VX, VY     float64
	Grounded   bool // Supported by the floor or a platform this frame
	Enlarged   bool
	Invincible bool

	growth     core.Countdown
	invincible core.Countdown
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// InvincibleTimer returns the frames of invincibility left.
func (p Player) InvincibleTimer() int {
	return p.invincible.Remaining
}

// GrowthTimer returns the frames left in the enlarged state.
func (p Player) GrowthTimer() int {
	return p.growth.Remaining
}

// Platform is a one-way ledge the player can land on from above.
// Vanishing platforms cycle between visible and hidden every period frames;
// Visible is recomputed from Timer on every step.
type Platform struct {
	X, Y      float64
	W, H      float64
	Vanishing bool
	Timer     int
	Visible   bool
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Solid reports whether the platform takes part in collision.
func (p Platform) Solid() bool {
	return !p.Vanishing || p.Visible
}

// VisibleAt reports whether a vanishing platform is shown at timer value t:
// visible for the first period frames, hidden for the next, repeating.
func VisibleAt(t, period int) bool {
	if period <= 0 {
		return true
	}
	return (t/period)%2 == 0
}

// PowerUp is a one-shot pickup.
type PowerUp struct {
	X, Y     float64
	Size     float64
	Kind     PowerUpKind
	Consumed bool
}

// Rect returns the pickup's bounding box.
func (p PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// State is the complete simulation state of one play session.
type State struct {
	Player    Player
	Platforms []Platform
	PowerUps  []PowerUp
	Score     int
	CameraX   float64 // Left edge of the visible slice
	Tick      uint64
}

// clone returns a copy that shares no slices with s.
func (s State) clone() State {
	s.Platforms = slices.Clone(s.Platforms)
	s.PowerUps = slices.Clone(s.PowerUps)
	return s
}

// check panics on any non-finite position or velocity.
func (s *State) check() {
	p := &s.Player
	core.MustFinite("player", p.X, p.Y, p.W, p.H, p.VX, p.VY)
	core.MustFinite("camera", s.CameraX)
}
