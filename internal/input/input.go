package input

import "sync"

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRespawn
	ActionCount // Sentinel value for array sizing
)

func (a Action) String() string {
	switch a {
	case ActionMoveForward:
		return "forward"
	case ActionMoveBackward:
		return "backward"
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// InputManager maps key codes delivered by the host's event router to logical
// actions and keeps per-tick edge state.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[rune][]Action

	// Current tick state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed flags (reset each tick)
	justPressed [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[rune][]Action),
	}

	im.BindKey('w', ActionMoveForward)
	im.BindKey('s', ActionMoveBackward)
	im.BindKey('a', ActionMoveLeft)
	im.BindKey('d', ActionMoveRight)
	im.BindKey(' ', ActionJump)
	im.BindKey('r', ActionRespawn)

	return im
}

// BindKey binds a key code to a logical action.
// Multiple keys can be bound to the same action.
func (im *InputManager) BindKey(key rune, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// KeyDown records a key press. Unbound keys are ignored.
func (im *InputManager) KeyDown(key rune) {
	im.handleKey(key, true)
}

// KeyUp records a key release. Unbound keys are ignored.
func (im *InputManager) KeyUp(key rune) {
	im.handleKey(key, false)
}

func (im *InputManager) handleKey(key rune, isPressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for _, act := range im.keyToActions[key] {
		// Detect edges immediately when the event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate must be called at the end of each tick to reset edge detection.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current tick
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}
