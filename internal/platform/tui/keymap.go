package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ActionBinding ties a key binding to the gameplay action it holds.
type ActionBinding struct {
	Action  core.Action
	Binding key.Binding
}

// GameKeyMap holds the key bindings for one game. Gameplay bindings feed the
// held-action state; Pause, Restart, Back and Quit are handled by the host.
// It implements help.KeyMap.
type GameKeyMap struct {
	Actions []ActionBinding
	Pause   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// letters expands single-letter keys to both cases so bindings ignore shift
// and caps lock.
func letters(keys ...string) []string {
	out := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k)
		if len(k) == 1 && strings.ToUpper(k) != k {
			out = append(out, strings.ToUpper(k))
		}
	}
	return out
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(letters(keys...)...),
		key.WithHelp(help, desc),
	)
}

// KeyMapFor returns the bindings for a game ID. Unknown games get only the
// shared bindings.
func KeyMapFor(gameID string) GameKeyMap {
	km := GameKeyMap{
		Pause:   bind("p", "pause", "p"),
		Restart: bind("r", "restart", "r"),
		Back:    bind("esc/b", "menu", "esc", "b"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
	}

	switch gameID {
	case "pong":
		km.Actions = []ActionBinding{
			{core.ActionPaddleUp, bind("w", "left up", "w")},
			{core.ActionPaddleDown, bind("s", "left down", "s")},
			{core.ActionPaddle2Up, bind("↑", "right up", "up")},
			{core.ActionPaddle2Down, bind("↓", "right down", "down")},
		}
	case "platformer":
		km.Actions = []ActionBinding{
			{core.ActionMoveLeft, bind("a/←", "left", "a", "left")},
			{core.ActionMoveRight, bind("d/→", "right", "d", "right")},
			{core.ActionJump, bind("w/↑/space", "jump", "w", "up", " ", "space")},
		}
	}

	return km
}

// Action returns the held action a key maps to, or ActionNone. Pause is a
// host key and is not reported here.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, ab := range k.Actions {
		if key.Matches(msg, ab.Binding) {
			return ab.Action
		}
	}
	return core.ActionNone
}

// opposites pairs actions that cannot both be meant at once. A terminal
// press of one means the other key was let go, even if its hold window is
// still open.
var opposites = map[core.Action]core.Action{
	core.ActionMoveLeft:    core.ActionMoveRight,
	core.ActionMoveRight:   core.ActionMoveLeft,
	core.ActionPaddleUp:    core.ActionPaddleDown,
	core.ActionPaddleDown:  core.ActionPaddleUp,
	core.ActionPaddle2Up:   core.ActionPaddle2Down,
	core.ActionPaddle2Down: core.ActionPaddle2Up,
}

// Opposite returns the action a press of a cancels, if any.
func Opposite(a core.Action) (core.Action, bool) {
	o, ok := opposites[a]
	return o, ok
}

// ShortHelp returns the bindings shown in the help line.
func (k GameKeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(k.Actions)+4)
	for _, ab := range k.Actions {
		bindings = append(bindings, ab.Binding)
	}
	return append(bindings, k.Pause, k.Restart, k.Back, k.Quit)
}

// FullHelp returns gameplay and host bindings as two columns.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	gameplay := make([]key.Binding, 0, len(k.Actions))
	for _, ab := range k.Actions {
		gameplay = append(gameplay, ab.Binding)
	}
	return [][]key.Binding{gameplay, {k.Pause, k.Restart, k.Back, k.Quit}}
}

// MenuKeyMap holds the game picker bindings. It implements help.KeyMap.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the game picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     bind("↑/k", "up", "up", "k", "w"),
		Down:   bind("↓/j", "down", "down", "j", "s"),
		Select: bind("enter", "play", "enter", " ", "space"),
		Quit:   bind("q", "quit", "q", "esc", "ctrl+c"),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns all bindings in one column.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
