package backend

import (
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/video"
)

// Backend represents a complete emulator platform (rendering + input).
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific input events to keypad/emulator actions
// - Handling backend-specific features (snapshots, shutdown signals)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config Config) error

	// Update handles one frame: it polls platform events, renders the
	// framebuffer when redraw is set, and returns the input events the
	// driver should feed into the input manager.
	Update(frame *video.FrameBuffer, redraw bool) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title string
	Scale int
}

// InputEvent is a platform input translated into an emulator action.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}
