package chippie

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/valerio/go-chippie/chippie/cpu"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/memory"
	"github.com/valerio/go-chippie/chippie/timing"
	"github.com/valerio/go-chippie/chippie/video"
)

// Config holds machine-level options.
type Config struct {
	// ClockSpeed is the instruction rate in Hz. Zero means the default.
	ClockSpeed int
	// ShiftQuirk makes SHR/SHL operate on Vx in place instead of Vy.
	ShiftQuirk bool
}

// Chip8 is the root struct wiring the interpreter to its collaborators.
// The CPU exclusively owns memory, framebuffer and keypad during
// instruction execution; backends touch the framebuffer and keypad only
// between frames, from the same driver loop.
type Chip8 struct {
	cpu     *cpu.CPU
	mem     *memory.Memory
	fb      *video.FrameBuffer
	keypad  *input.Keypad
	manager *input.Manager

	rom            []byte
	config         Config
	cyclesPerFrame int
	frameCount     uint64
	paused         bool
}

// New creates a machine with no program loaded.
func New(config Config) *Chip8 {
	m := &Chip8{config: config}
	m.init()
	return m
}

// NewWithData creates a machine and loads the given ROM image.
func NewWithData(rom []byte, config Config) (*Chip8, error) {
	m := New(config)
	if err := m.mem.LoadROM(rom); err != nil {
		return nil, err
	}
	m.rom = append([]byte(nil), rom...)
	return m, nil
}

// NewWithFile creates a machine and loads the file specified into it.
func NewWithFile(path string, config Config) (*Chip8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file: %w", err)
	}

	return NewWithData(data, config)
}

func (m *Chip8) init() {
	clockSpeed := m.config.ClockSpeed
	if clockSpeed <= 0 {
		clockSpeed = timing.DefaultClockSpeed
	}
	m.cyclesPerFrame = timing.CyclesPerFrame(clockSpeed)

	m.mem = memory.New()
	m.fb = video.NewFrameBuffer()
	m.keypad = input.NewKeypad()
	m.manager = input.NewManager(m.keypad)

	m.cpu = cpu.New(m.mem, m.fb, m.keypad)
	m.cpu.SetShiftQuirk(m.config.ShiftQuirk)
}

// Reset restores the machine to its power-on state and reloads the ROM.
func (m *Chip8) Reset() {
	manager := m.manager
	m.init()
	// keep the existing manager so backend callbacks stay registered,
	// but point it at the fresh keypad
	if manager != nil {
		m.manager = manager
		m.manager.SetKeypad(m.keypad)
	}

	if m.rom != nil {
		// length was validated on the original load
		_ = m.mem.LoadROM(m.rom)
	}
	m.frameCount = 0
	m.paused = false

	slog.Info("Machine reset")
}

// RunUntilFrame executes one frame worth of instructions at the
// configured clock speed, then ticks the timers once. The instruction
// rate and the 60Hz timer rate stay decoupled: the driver calls this at
// 60Hz and the cycle count per call absorbs the clock speed.
func (m *Chip8) RunUntilFrame() error {
	if m.paused {
		return nil
	}

	for i := 0; i < m.cyclesPerFrame; i++ {
		if err := m.cpu.Tick(); err != nil {
			return err
		}
	}

	m.cpu.TickTimers()
	m.frameCount++

	return nil
}

// GetCurrentFrame returns the live framebuffer.
func (m *Chip8) GetCurrentFrame() *video.FrameBuffer {
	return m.fb
}

// ConsumeRedraw returns the redraw flag and clears it, so the caller
// renders at most once per framebuffer change.
func (m *Chip8) ConsumeRedraw() bool {
	redraw := m.cpu.ShouldDraw()
	m.cpu.ClearDrawFlag()
	return redraw
}

// InputManager returns the manager backends feed input events into.
func (m *Chip8) InputManager() *input.Manager {
	return m.manager
}

// TogglePause stops or resumes instruction and timer execution.
func (m *Chip8) TogglePause() {
	m.paused = !m.paused
	slog.Info("Pause toggled", "paused", m.paused)
}

// SoundActive reports whether the program is currently requesting sound.
func (m *Chip8) SoundActive() bool {
	return m.cpu.SoundTimer() > 0
}

// GetFrameCount returns the number of frames executed.
func (m *Chip8) GetFrameCount() uint64 {
	return m.frameCount
}

// GetInstructionCount returns the number of instructions executed.
func (m *Chip8) GetInstructionCount() uint64 {
	return m.cpu.Cycles()
}

// BindDefaultActions wires the standard emulator action callbacks.
func (m *Chip8) BindDefaultActions(onQuit func()) {
	m.manager.On(action.EmulatorPauseToggle, event.Press, m.TogglePause)
	m.manager.On(action.EmulatorReset, event.Press, m.Reset)
	if onQuit != nil {
		m.manager.On(action.EmulatorQuit, event.Press, onQuit)
	}
}
