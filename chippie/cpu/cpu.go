package cpu

import (
	"errors"
	"math/rand"

	"github.com/valerio/go-chippie/chippie/bit"
	"github.com/valerio/go-chippie/chippie/input"
	"github.com/valerio/go-chippie/chippie/memory"
	"github.com/valerio/go-chippie/chippie/video"
)

const (
	stackDepth = 16

	// flagRegister is V[0xF], doubling as the carry/borrow/collision flag.
	// Programs may still address it like any other register.
	flagRegister = 0xF
)

// CPU is the interpreter state: the register file, call stack, timers
// and the fetch-decode-execute cycle over them. It owns the memory,
// framebuffer and keypad it was created with; nothing else mutates them
// while an instruction executes.
type CPU struct {
	v     [16]uint8
	i     uint16
	pc    uint16
	stack [stackDepth]uint16
	sp    uint8
	delay uint8
	sound uint8

	memory *memory.Memory
	fb     *video.FrameBuffer
	keypad *input.Keypad

	// drawFlag is raised whenever the framebuffer is mutated and
	// lowered by the presentation side once a frame is consumed.
	drawFlag bool

	// shiftQuirk switches SHR/SHL to operate on Vx in place instead of
	// reading Vy, matching the alternate interpreter lineage.
	shiftQuirk bool

	randByte func() uint8
	cycles   uint64
}

// New returns a CPU with the program counter at the program start.
func New(mem *memory.Memory, fb *video.FrameBuffer, keypad *input.Keypad) *CPU {
	return &CPU{
		pc:       memory.ProgramStart,
		memory:   mem,
		fb:       fb,
		keypad:   keypad,
		randByte: func() uint8 { return uint8(rand.Intn(256)) },
	}
}

// SetShiftQuirk selects the SHR/SHL source register behavior.
// Disabled (the default) shifts the value read from Vy; enabled shifts
// Vx in place.
func (c *CPU) SetShiftQuirk(enabled bool) {
	c.shiftQuirk = enabled
}

// Tick fetches, decodes and executes a single instruction.
// All failures are returned before any state is mutated.
func (c *CPU) Tick() error {
	if c.pc < memory.ProgramStart || c.pc >= memory.Size-1 {
		return PCOutOfRangeError{Address: c.pc}
	}

	word := bit.Combine(c.memory.Read(c.pc), c.memory.Read(c.pc+1))

	instr, err := Decode(word)
	if err != nil {
		var unknown UnknownOpcodeError
		if errors.As(err, &unknown) {
			unknown.Address = c.pc
			return unknown
		}
		return err
	}

	if err := c.execute(instr); err != nil {
		return err
	}

	c.cycles++
	return nil
}

// TickTimers decrements the delay and sound timers by one step.
// Called by the driver at 60Hz, independently of the instruction rate.
func (c *CPU) TickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// ShouldDraw reports whether the framebuffer changed since the flag was
// last cleared.
func (c *CPU) ShouldDraw() bool {
	return c.drawFlag
}

// ClearDrawFlag is called by the presentation side after consuming a frame.
func (c *CPU) ClearDrawFlag() {
	c.drawFlag = false
}

// DelayTimer returns the current value of the delay timer.
func (c *CPU) DelayTimer() uint8 {
	return c.delay
}

// SoundTimer returns the current value of the sound timer. A non-zero
// value means the program is requesting sound.
func (c *CPU) SoundTimer() uint8 {
	return c.sound
}

// V returns the value of a general-purpose register, for diagnostics.
func (c *CPU) V(index uint8) uint8 {
	return c.v[index&0xF]
}

// PC returns the current program counter, for diagnostics.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Cycles returns the number of instructions executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// readMemory reads a byte with the address wrapped into the 4KB space,
// so index arithmetic past the top of memory cannot escape it.
func (c *CPU) readMemory(address uint16) byte {
	return c.memory.Read(address % memory.Size)
}

// writeMemory writes a byte with the address wrapped into the 4KB space.
func (c *CPU) writeMemory(address uint16, value byte) {
	c.memory.Write(address%memory.Size, value)
}
