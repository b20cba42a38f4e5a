package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // A, Left arrow - run left (platformer)
	ActionMoveRight          // D, Right arrow - run right (platformer)
	ActionJump               // Space, W, Up arrow - jump (platformer)
	ActionPaddleUp           // W - left paddle up (pong)
	ActionPaddleDown         // S - left paddle down (pong)
	ActionPaddle2Up          // Up arrow - right paddle up (pong)
	ActionPaddle2Down        // Down arrow - right paddle down (pong)
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionPaddleUp:
		return "PaddleUp"
	case ActionPaddleDown:
		return "PaddleDown"
	case ActionPaddle2Up:
		return "Paddle2Up"
	case ActionPaddle2Down:
		return "Paddle2Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held actions that one simulation tick sees.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// InputState is the input provider: the instantaneous pressed/released state
// of every logical action. Hosts call Press on key-down and Release on key-up;
// the simulation polls Frame once per tick. There is no queue, so a press and
// release that both land between two ticks are never seen.
type InputState struct {
	held map[Action]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{held: make(map[Action]bool)}
}

// Press marks the action as held.
func (s *InputState) Press(a Action) {
	if a == ActionNone {
		return
	}
	s.held[a] = true
}

// Release marks the action as not held.
func (s *InputState) Release(a Action) {
	delete(s.held, a)
}

// Held reports whether the action is currently held.
func (s *InputState) Held(a Action) bool {
	return s.held[a]
}

// ReleaseAll clears every held action.
func (s *InputState) ReleaseAll() {
	clear(s.held)
}

// Frame returns an independent snapshot of the held actions.
func (s *InputState) Frame() InputFrame {
	frame := NewInputFrame()
	for a := range s.held {
		frame.Set(a)
	}
	return frame
}

// EdgeDetector turns a held action into a one-shot trigger: Pressed reports
// true only on the first frame the action is seen held.
type EdgeDetector struct {
	Action Action
	was    bool
}

// Pressed reports whether the action went from released to held this frame.
func (e *EdgeDetector) Pressed(in InputFrame) bool {
	now := in.Has(e.Action)
	fired := now && !e.was
	e.was = now
	return fired
}
