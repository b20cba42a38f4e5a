package platformer

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

const eps = 1e-9

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// emptyLevel returns the default tuning with no platforms or pickups.
func emptyLevel() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level = config.LevelConfig{}
	return cfg
}

func newTestGame(cfg config.PlatformerConfig) *Game {
	g := New()
	g.ResetWith(cfg)
	return g
}

// pickupAtStart places a single pickup overlapping the player's spawn point.
func pickupAtStart(kind string) config.PlatformerConfig {
	cfg := emptyLevel()
	cfg.Level.PowerUps = []config.PowerUpSpec{{X: 40, Y: 570, Type: kind}}
	return cfg
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("platformer") {
		t.Fatal("platformer should register itself")
	}
	g, err := registry.Create("platformer")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Platformer" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestLandingScenario(t *testing.T) {
	cfg := emptyLevel()
	cfg.Player = config.PlatformerPlayer{StartX: 50, StartY: 440, Width: 10, Height: 10}
	cfg.Level.Platforms = []config.PlatformSpec{{X: 0, Y: 450, W: 200, H: 26}}

	g := newTestGame(cfg)
	g.state.Player.VY = 5

	g.Step(frame())

	p := g.Snapshot().Player
	if p.Y != 450-p.H {
		t.Errorf("Y = %v, expected %v", p.Y, 450-p.H)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
	if !p.Grounded {
		t.Error("expected grounded after landing")
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	cfg := emptyLevel()
	cfg.Player = config.PlatformerPlayer{StartX: 50, StartY: 452, Width: 10, Height: 10}
	cfg.Level.Platforms = []config.PlatformSpec{{X: 0, Y: 450, W: 200, H: 26}}

	g := newTestGame(cfg)
	g.state.Player.VY = -3

	g.Step(frame())

	p := g.Snapshot().Player
	if p.Grounded {
		t.Error("rising player should not land")
	}
	if math.Abs(p.Y-449.5) > eps || math.Abs(p.VY-(-2.5)) > eps {
		t.Errorf("expected free flight to y=449.5 vy=-2.5, got y=%v vy=%v", p.Y, p.VY)
	}
}

func TestHiddenPlatformIsFallenThrough(t *testing.T) {
	cfg := emptyLevel()
	cfg.Player = config.PlatformerPlayer{StartX: 50, StartY: 440, Width: 10, Height: 10}
	cfg.Level.Platforms = []config.PlatformSpec{{X: 0, Y: 450, W: 200, H: 26, Vanishing: true}}

	g := newTestGame(cfg)
	g.state.Player.VY = 5
	g.state.Platforms[0].Timer = 60

	g.Step(frame())

	s := g.Snapshot()
	if s.Platforms[0].Visible {
		t.Fatal("platform should be hidden at timer 60")
	}
	if s.Player.Grounded || s.Player.Y != 445.5 {
		t.Errorf("player should fall through, got %+v", s.Player)
	}
}

func TestVanishingCycle(t *testing.T) {
	cfg := emptyLevel()
	cfg.Level.Platforms = []config.PlatformSpec{
		{X: 1000, Y: 300, W: 100, H: 20, Vanishing: true},
		{X: 1200, Y: 300, W: 100, H: 20},
	}
	g := newTestGame(cfg)

	for n := 1; n <= 250; n++ {
		g.Step(frame())
		s := g.Snapshot()

		want := VisibleAt(n-1, 60)
		if s.Platforms[0].Visible != want {
			t.Fatalf("step %d: Visible = %v, expected %v", n, s.Platforms[0].Visible, want)
		}
		if s.Platforms[0].Timer != n {
			t.Fatalf("step %d: Timer = %d", n, s.Platforms[0].Timer)
		}
		if !s.Platforms[1].Visible || s.Platforms[1].Timer != 0 {
			t.Fatalf("step %d: static platform changed: %+v", n, s.Platforms[1])
		}
	}
}

func TestStarPickup(t *testing.T) {
	g := newTestGame(pickupAtStart("star"))

	result := g.Step(frame())
	if !result.Scored {
		t.Error("pickup should report a score change")
	}

	p := g.Snapshot().Player
	if !p.Invincible {
		t.Fatal("expected invincible after star pickup")
	}
	if p.InvincibleTimer() != 480 {
		t.Fatalf("InvincibleTimer = %d, expected 480", p.InvincibleTimer())
	}

	for i := 1; i < 480; i++ {
		g.Step(frame())
	}
	p = g.Snapshot().Player
	if !p.Invincible || p.InvincibleTimer() != 1 {
		t.Fatalf("after 479 steps expected 1 frame left, got invincible=%v timer=%d", p.Invincible, p.InvincibleTimer())
	}

	g.Step(frame())
	if g.Snapshot().Player.Invincible {
		t.Error("invincibility should end 480 steps after pickup")
	}
}

func TestPowerUpConsumedOnce(t *testing.T) {
	g := newTestGame(pickupAtStart("star"))

	g.Step(frame())
	for i := 0; i < 10; i++ {
		result := g.Step(frame())
		if result.Scored {
			t.Fatalf("step %d: consumed pickup scored again", i)
		}
	}

	s := g.Snapshot()
	if s.Score != 100 {
		t.Errorf("Score = %d, expected 100", s.Score)
	}
	if !s.PowerUps[0].Consumed {
		t.Error("pickup should be consumed")
	}
	if s.Player.InvincibleTimer() != 470 {
		t.Errorf("InvincibleTimer = %d, expected 470 (no restart)", s.Player.InvincibleTimer())
	}
}

func TestGrowth(t *testing.T) {
	cfg := pickupAtStart("mushroom")
	cfg.Effects.GrowthFrames = 5
	g := newTestGame(cfg)

	g.Step(frame())

	p := g.Snapshot().Player
	if !p.Enlarged {
		t.Fatal("expected enlarged after growth pickup")
	}
	if p.W != 45 || p.H != 60 {
		t.Errorf("size = %vx%v, expected 45x60", p.W, p.H)
	}
	if p.Y+p.H != 600 {
		t.Errorf("bottom = %v, expected to stay on the floor at 600", p.Y+p.H)
	}
	if p.X+p.W/2 != 55 {
		t.Errorf("center = %v, expected 55", p.X+p.W/2)
	}

	for i := 0; i < 4; i++ {
		g.Step(frame())
	}
	if !g.Snapshot().Player.Enlarged {
		t.Fatal("growth ended early")
	}

	g.Step(frame())
	p = g.Snapshot().Player
	if p.Enlarged || p.W != 30 || p.H != 40 {
		t.Errorf("expected base size after expiry, got %+v", p)
	}
	if p.Y+p.H != 600 {
		t.Errorf("bottom = %v after shrink, expected 600", p.Y+p.H)
	}
}

func TestSecondGrowthRestartsTimer(t *testing.T) {
	g := newTestGame(emptyLevel())
	p := &g.state.Player

	g.grow(p)
	for i := 0; i < 100; i++ {
		g.tickEffects(p)
	}
	g.grow(p)

	if p.GrowthTimer() != 600 {
		t.Errorf("GrowthTimer = %d, expected restart at 600", p.GrowthTimer())
	}
	if p.W != 45 || p.H != 60 {
		t.Errorf("second pickup should not grow again, size = %vx%v", p.W, p.H)
	}
}

func TestJump(t *testing.T) {
	tests := []struct {
		name   string
		kind   string
		wantVY float64
	}{
		{"base size", "", -11 + 0.5},
		{"enlarged", "growth", -11*1.12 + 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := emptyLevel()
			if tt.kind != "" {
				cfg = pickupAtStart(tt.kind)
			}
			g := newTestGame(cfg)

			// Settle on the floor first.
			g.Step(frame())
			if !g.Snapshot().Player.Grounded {
				t.Fatal("player should start grounded")
			}

			g.Step(frame(core.ActionJump))
			p := g.Snapshot().Player
			if math.Abs(p.VY-tt.wantVY) > eps {
				t.Errorf("VY = %v, expected %v", p.VY, tt.wantVY)
			}
			if p.Grounded {
				t.Error("player should be airborne after jumping")
			}
		})
	}
}

func TestNoJumpInAir(t *testing.T) {
	cfg := emptyLevel()
	cfg.Player.StartY = 100
	g := newTestGame(cfg)

	g.Step(frame(core.ActionJump))

	if vy := g.Snapshot().Player.VY; vy != 0.5 {
		t.Errorf("VY = %v, expected gravity only (0.5)", vy)
	}
}

func TestHorizontalInput(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		wantVX  float64
	}{
		{"none", nil, 0},
		{"left", []core.Action{core.ActionMoveLeft}, -4},
		{"right", []core.Action{core.ActionMoveRight}, 4},
		{"both", []core.Action{core.ActionMoveLeft, core.ActionMoveRight}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := emptyLevel()
			cfg.Player.StartX = 500
			g := newTestGame(cfg)

			g.Step(frame(tt.actions...))

			p := g.Snapshot().Player
			if p.VX != tt.wantVX {
				t.Errorf("VX = %v, expected %v", p.VX, tt.wantVX)
			}
			if p.X != 500+tt.wantVX {
				t.Errorf("X = %v, expected %v", p.X, 500+tt.wantVX)
			}
		})
	}
}

func TestGravityIsUnbounded(t *testing.T) {
	cfg := emptyLevel()
	cfg.Player.StartY = 0
	g := newTestGame(cfg)

	for i := 0; i < 30; i++ {
		g.Step(frame())
	}

	p := g.Snapshot().Player
	if p.VY != 15 {
		t.Errorf("VY = %v, expected 15 after 30 frames of free fall", p.VY)
	}
	if p.Y != 232.5 {
		t.Errorf("Y = %v, expected 232.5", p.Y)
	}
}

func TestCamera(t *testing.T) {
	tests := []struct {
		name    string
		playerX float64
		want    float64
	}{
		{"start of level", 40, 0},
		{"middle", 1000, 615},
		{"end of level", 2370, 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := emptyLevel()
			cfg.Player.StartX = tt.playerX
			g := newTestGame(cfg)

			g.Step(frame())

			if got := g.Snapshot().CameraX; got != tt.want {
				t.Errorf("CameraX = %v, expected %v", got, tt.want)
			}
		})
	}
}

// scriptedRun plays the default level with a fixed input pattern and calls
// check after every step.
func scriptedRun(t *testing.T, steps int, check func(i int, s State)) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	g := newTestGame(cfg)

	pattern := []core.InputFrame{
		frame(core.ActionMoveRight, core.ActionJump),
		frame(core.ActionMoveRight),
		frame(core.ActionMoveLeft, core.ActionJump),
		frame(core.ActionJump),
		frame(),
	}
	for i := 0; i < steps; i++ {
		g.Step(pattern[(i/70)%len(pattern)])
		if check != nil {
			check(i, g.Snapshot())
		}
	}
	return g
}

func TestBoundsHoldEveryFrame(t *testing.T) {
	scriptedRun(t, 6000, func(i int, s State) {
		p := s.Player
		if p.X < 0 || p.X+p.W > 2400 {
			t.Fatalf("frame %d: player x out of bounds: %+v", i, p)
		}
		if p.Y < 0 || p.Y+p.H > 600 {
			t.Fatalf("frame %d: player y out of bounds: %+v", i, p)
		}
		if s.CameraX < 0 || s.CameraX > 1600 {
			t.Fatalf("frame %d: camera out of range: %v", i, s.CameraX)
		}
	})
}

func TestDeterminism(t *testing.T) {
	s1 := scriptedRun(t, 3000, nil).Snapshot()
	s2 := scriptedRun(t, 3000, nil).Snapshot()

	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\n run1: %+v\n run2: %+v", s1, s2)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	cfg := emptyLevel()
	cfg.Level.Platforms = []config.PlatformSpec{{X: 0, Y: 300, W: 100, H: 20}}
	g := newTestGame(cfg)

	snap := g.Snapshot()
	snap.Platforms[0].X = 999

	if g.Snapshot().Platforms[0].X != 0 {
		t.Error("mutating a snapshot changed the game state")
	}
}

func TestPauseIsEdgeTriggered(t *testing.T) {
	g := newTestGame(emptyLevel())

	for i := 0; i < 3; i++ {
		g.Step(frame(core.ActionPause, core.ActionMoveRight))
	}
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	if g.Snapshot().Tick != 0 || g.Snapshot().Player.X != 40 {
		t.Error("paused game should not advance")
	}

	g.Step(frame())
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second press should unpause")
	}
}

// recordingCanvas captures draw calls. Text is 8x16 units per rune.
type recordingCanvas struct {
	rects []core.Rect
	texts []string
}

func (c *recordingCanvas) Clear() {
	c.rects = nil
	c.texts = nil
}

func (c *recordingCanvas) FillRect(r core.Rect, _ core.Color) {
	c.rects = append(c.rects, r)
}

func (c *recordingCanvas) DrawText(_, _ float64, text string, _ core.Color) {
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * 8
}

func (c *recordingCanvas) LineHeight() float64 {
	return 16
}

func TestRenderSkipsHiddenAndConsumed(t *testing.T) {
	g := newTestGame(emptyLevel())
	g.state.Player.X, g.state.Player.Y = 500, 560
	g.state.Platforms = []Platform{
		{X: 100, Y: 500, W: 100, H: 20, Visible: true},
		{X: 300, Y: 500, W: 100, H: 20, Vanishing: true, Visible: false},
	}
	g.state.PowerUps = []PowerUp{
		{X: 150, Y: 400, Size: 24, Consumed: true},
		{X: 250, Y: 400, Size: 24},
	}
	g.state.CameraX = 50

	dst := &recordingCanvas{}
	g.Render(dst)

	// Visible platform, live pickup, player.
	if len(dst.rects) != 3 {
		t.Fatalf("expected 3 rects, got %d: %+v", len(dst.rects), dst.rects)
	}
	if dst.rects[0].X != 50 {
		t.Errorf("platform should be drawn relative to the camera, x = %v", dst.rects[0].X)
	}
	if dst.rects[1].X != 200 {
		t.Errorf("pickup x = %v, expected 200", dst.rects[1].X)
	}
	if len(dst.texts) == 0 || dst.texts[0] != "Score: 0" {
		t.Errorf("score text missing: %v", dst.texts)
	}
}
