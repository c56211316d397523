package input

import (
	"time"

	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
)

const (
	// debounceDuration is the minimum time between debounced emulator actions
	debounceDuration = 300 * time.Millisecond
)

// Manager routes input actions to the keypad latch and to registered
// callbacks for emulator-level actions (quit, pause, reset).
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]time.Time
	keypad        *Keypad
}

func NewManager(k *Keypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]time.Time),
		keypad:        k,
	}
}

// SetKeypad points the manager at a different keypad latch, used when
// the machine is reset and its state rebuilt.
func (m *Manager) SetKeypad(k *Keypad) {
	m.keypad = k
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// Keypad keys are written straight into the latch, never debounced:
	// programs poll the latch and expect held keys to stay held.
	if key, ok := keypadKey(act); ok {
		if m.keypad != nil {
			switch evt {
			case event.Press:
				m.keypad.Press(key)
			case event.Release:
				m.keypad.Release(key)
			}
		}
		return
	}

	// Emulator actions are debounced so a held key fires once.
	if evt == event.Press {
		now := time.Now()
		if now.Sub(m.lastTriggered[act]) < debounceDuration {
			return
		}
		m.lastTriggered[act] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

// keypadKey maps keypad actions to virtual key indices 0x0-0xF.
func keypadKey(act action.Action) (uint8, bool) {
	if act >= action.Key0 && act <= action.KeyF {
		return uint8(act - action.Key0), true
	}
	return 0, false
}
