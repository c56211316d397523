package chippie

import (
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/video"
)

// Machine is the interface backends drive the emulator through.
type Machine interface {
	// RunUntilFrame executes one 60Hz frame worth of instructions and
	// ticks the timers once. Returns a fatal interpreter error, if any.
	RunUntilFrame() error
	// GetCurrentFrame returns the live framebuffer.
	GetCurrentFrame() *video.FrameBuffer
	// ConsumeRedraw reports whether the framebuffer changed since the
	// last call and clears the redraw flag.
	ConsumeRedraw() bool
	// InputManager returns the manager backends feed input events into.
	InputManager() *input.Manager
}

var _ Machine = (*Chip8)(nil)
