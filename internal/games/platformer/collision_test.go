package platformer

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func TestLandsOn(t *testing.T) {
	platform := core.NewRect(0, 450, 200, 26)

	tests := []struct {
		name string
		body core.Rect
		vy   float64
		want bool
	}{
		{"falls onto top", core.NewRect(50, 445.5, 10, 10), 5.5, true},
		{"was exactly on top last frame", core.NewRect(50, 440.5, 10, 10), 0.5, true},
		{"moving up through it", core.NewRect(50, 449.5, 10, 10), -2.5, false},
		{"already below top", core.NewRect(50, 457.5, 10, 10), 2.5, false},
		{"bottom above top", core.NewRect(50, 430, 10, 10), 5, false},
		{"bottom touching top", core.NewRect(50, 440, 10, 10), 5, false},
		{"beside platform", core.NewRect(210, 445.5, 10, 10), 5.5, false},
		{"stationary inside", core.NewRect(50, 441, 10, 10), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := landsOn(tt.body, tt.vy, platform); got != tt.want {
				t.Errorf("landsOn() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestResolvePlatformsLastMatchWins(t *testing.T) {
	lower := Platform{X: 0, Y: 452, W: 200, H: 26}
	upper := Platform{X: 0, Y: 450, W: 200, H: 26}

	tests := []struct {
		name      string
		platforms []Platform
		wantY     float64
	}{
		{"lower listed last", []Platform{upper, lower}, 442},
		{"upper listed last", []Platform{lower, upper}, 440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: 50, Y: 445.5, W: 10, H: 10, VY: 5.5}
			if !resolvePlatforms(&p, tt.platforms) {
				t.Fatal("expected a landing")
			}
			if p.Y != tt.wantY {
				t.Errorf("Y = %v, expected %v", p.Y, tt.wantY)
			}
			if p.VY != 0 || !p.Grounded {
				t.Errorf("landing should zero VY and ground, got VY=%v grounded=%v", p.VY, p.Grounded)
			}
		})
	}
}

func TestResolvePlatformsSkipsHidden(t *testing.T) {
	platforms := []Platform{{X: 0, Y: 450, W: 200, H: 26, Vanishing: true, Visible: false}}
	p := Player{X: 50, Y: 445.5, W: 10, H: 10, VY: 5.5}

	if resolvePlatforms(&p, platforms) {
		t.Error("hidden vanishing platform should not collide")
	}
	if p.Y != 445.5 || p.VY != 5.5 || p.Grounded {
		t.Errorf("player should be untouched, got %+v", p)
	}

	platforms[0].Visible = true
	if !resolvePlatforms(&p, platforms) {
		t.Error("visible vanishing platform should collide")
	}
}

func TestVisibleAt(t *testing.T) {
	tests := []struct {
		timer int
		want  bool
	}{
		{0, true},
		{30, true},
		{59, true},
		{60, false},
		{90, false},
		{119, false},
		{120, true},
		{179, true},
		{180, false},
	}

	for _, tt := range tests {
		if got := VisibleAt(tt.timer, 60); got != tt.want {
			t.Errorf("VisibleAt(%d, 60) = %v, expected %v", tt.timer, got, tt.want)
		}
	}
}

func TestCollectPowerUpsIsIdempotent(t *testing.T) {
	p := Player{X: 0, Y: 0, W: 30, H: 40}
	powerUps := []PowerUp{
		{X: 10, Y: 10, Size: 24, Kind: PowerUpGrowth},
		{X: 100, Y: 10, Size: 24, Kind: PowerUpInvincibility},
	}

	taken := collectPowerUps(&p, powerUps)
	if len(taken) != 1 || taken[0] != PowerUpGrowth {
		t.Fatalf("expected growth pickup, got %v", taken)
	}
	if !powerUps[0].Consumed || powerUps[1].Consumed {
		t.Errorf("consumed flags wrong: %+v", powerUps)
	}

	if again := collectPowerUps(&p, powerUps); len(again) != 0 {
		t.Errorf("consumed pickup matched again: %v", again)
	}
}
