package terminal

import (
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-chippie/chippie/backend"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	// each pixel renders as two columns so the 2:1 cell aspect of most
	// terminals keeps the display square-ish
	scaleX = 2
	scaleY = 1
)

// keyTimeout synthesizes key releases: terminals only deliver key-down,
// so a key is considered released once its repeat events stop arriving.
const keyTimeout = 100 * time.Millisecond

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen  tcell.Screen
	config  backend.Config
	running bool

	keyStates  map[action.Action]time.Time // last time each key was seen
	activeKeys map[action.Action]bool      // keys considered held last frame
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.screen = screen
	t.running = true

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	slog.Info("Terminal backend initialized")

	return nil
}

// Update renders a frame and processes terminal events
func (t *Backend) Update(frame *video.FrameBuffer, redraw bool) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := time.Now()

	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if act, ok := t.translateKey(ev); ok {
				t.keyStates[act] = now
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	// emit presses for newly seen keys and releases for expired ones
	for act, lastSeen := range t.keyStates {
		held := now.Sub(lastSeen) < keyTimeout
		switch {
		case held && !t.activeKeys[act]:
			t.activeKeys[act] = true
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		case !held && t.activeKeys[act]:
			delete(t.activeKeys, act)
			delete(t.keyStates, act)
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}

	if redraw {
		t.render(frame)
	}
	t.screen.Show()

	return events, nil
}

// Cleanup restores the terminal
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) translateKey(ev *tcell.EventKey) (action.Action, bool) {
	var name string

	switch ev.Key() {
	case tcell.KeyEscape:
		name = "Escape"
	case tcell.KeyF5:
		name = "F5"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			name = "Space"
		} else {
			// the key map is keyed on lowercase; held shift or caps
			// lock must not drop keypad input
			name = string(unicode.ToLower(ev.Rune()))
		}
	default:
		return 0, false
	}

	return input.GetDefaultMapping(name)
}

func (t *Backend) render(frame *video.FrameBuffer) {
	pixels := frame.ToSlice()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			char := ' '
			if pixels[y*width+x] == 1 {
				char = '█'
			}
			for sx := 0; sx < scaleX; sx++ {
				t.screen.SetContent(x*scaleX+sx, y*scaleY, char, nil, style)
			}
		}
	}
}
