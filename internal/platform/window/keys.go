package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// keyBinding ties a physical key to the gameplay action it holds.
type keyBinding struct {
	Key    ebiten.Key
	Action core.Action
}

// keyMap holds the bindings for one game. Gameplay bindings are level
// triggered; Restart, Back and Quit fire once per press.
type keyMap struct {
	Actions []keyBinding
	Restart []ebiten.Key
	Back    []ebiten.Key
	Quit    []ebiten.Key
}

// keyMapFor returns the bindings for a game ID. The layout matches the
// terminal host.
func keyMapFor(gameID string) keyMap {
	km := keyMap{
		Actions: []keyBinding{{ebiten.KeyP, core.ActionPause}},
		Restart: []ebiten.Key{ebiten.KeyR},
		Back:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB},
		Quit:    []ebiten.Key{ebiten.KeyQ},
	}

	switch gameID {
	case "pong":
		km.Actions = append(km.Actions,
			keyBinding{ebiten.KeyW, core.ActionPaddleUp},
			keyBinding{ebiten.KeyS, core.ActionPaddleDown},
			keyBinding{ebiten.KeyArrowUp, core.ActionPaddle2Up},
			keyBinding{ebiten.KeyArrowDown, core.ActionPaddle2Down},
		)
	case "platformer":
		km.Actions = append(km.Actions,
			keyBinding{ebiten.KeyA, core.ActionMoveLeft},
			keyBinding{ebiten.KeyArrowLeft, core.ActionMoveLeft},
			keyBinding{ebiten.KeyD, core.ActionMoveRight},
			keyBinding{ebiten.KeyArrowRight, core.ActionMoveRight},
			keyBinding{ebiten.KeyW, core.ActionJump},
			keyBinding{ebiten.KeyArrowUp, core.ActionJump},
			keyBinding{ebiten.KeySpace, core.ActionJump},
		)
	}

	return km
}

// keyboard reports key state. Ebitengine is the real source; tests script it.
type keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeyboard reads the keyboard Ebitengine sampled for this tick.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeyboard) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// anyJustPressed reports whether one of keys went down this tick.
func anyJustPressed(kb keyboard, keys []ebiten.Key) bool {
	for _, k := range keys {
		if kb.JustPressed(k) {
			return true
		}
	}
	return false
}

// syncInput mirrors the physical key state into s. An action stays held while
// any key bound to it is down, so releasing A does not cancel a held Left.
func syncInput(s *core.InputState, km keyMap, kb keyboard) {
	held := make(map[core.Action]bool, len(km.Actions))
	for _, b := range km.Actions {
		if kb.Pressed(b.Key) {
			held[b.Action] = true
		}
	}

	for _, b := range km.Actions {
		if held[b.Action] {
			s.Press(b.Action)
		} else {
			s.Release(b.Action)
		}
	}
}
