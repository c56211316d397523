package cpu

import (
	"github.com/valerio/go-chippie/chippie/bit"
	"github.com/valerio/go-chippie/chippie/memory"
)

// execute applies a decoded instruction to the interpreter state.
// Every handler is responsible for its own PC advance: +2 for one
// instruction, +4 for a taken skip, and jumps/calls/returns set it
// outright. The wait-for-key variant leaves PC untouched until a key is
// held, so the driver re-executes it each cycle (blocking poll).
func (c *CPU) execute(instr Instruction) error {
	x, y := instr.X, instr.Y

	switch instr.Op {
	case OpClearScreen:
		c.fb.Clear()
		c.drawFlag = true
		c.pc += 2

	case OpReturn:
		if c.sp == 0 {
			return StackUnderflowError{Address: c.pc}
		}
		c.pc = c.stack[c.sp] + 2
		c.sp--

	case OpJump:
		c.pc = instr.NNN

	case OpCall:
		if c.sp >= stackDepth-1 {
			return StackOverflowError{Address: c.pc}
		}
		c.sp++
		c.stack[c.sp] = c.pc
		c.pc = instr.NNN

	case OpSkipEqualImmediate:
		c.skipIf(c.v[x] == instr.KK)

	case OpSkipNotEqualImmediate:
		c.skipIf(c.v[x] != instr.KK)

	case OpSkipEqualRegister:
		c.skipIf(c.v[x] == c.v[y])

	case OpLoadImmediate:
		c.v[x] = instr.KK
		c.pc += 2

	case OpAddImmediate:
		// wraps modulo 256, carry flag untouched
		c.v[x] += instr.KK
		c.pc += 2

	case OpLoadRegister:
		c.v[x] = c.v[y]
		c.pc += 2

	case OpOr:
		c.v[x] |= c.v[y]
		c.pc += 2

	case OpAnd:
		c.v[x] &= c.v[y]
		c.pc += 2

	case OpXor:
		c.v[x] ^= c.v[y]
		c.pc += 2

	case OpAddRegister:
		result, carry := bit.CheckedAdd(c.v[x], c.v[y])
		c.v[flagRegister] = boolToByte(carry)
		c.v[x] = result
		c.pc += 2

	case OpSubRegister:
		// VF = 1 means no borrow occurred
		result, borrow := bit.CheckedSub(c.v[x], c.v[y])
		c.v[flagRegister] = boolToByte(!borrow)
		c.v[x] = result
		c.pc += 2

	case OpShiftRight:
		src := c.v[y]
		if c.shiftQuirk {
			src = c.v[x]
		}
		c.v[x] = src >> 1
		c.v[flagRegister] = src & 0x01
		c.pc += 2

	case OpSubReverse:
		result, borrow := bit.CheckedSub(c.v[y], c.v[x])
		c.v[flagRegister] = boolToByte(!borrow)
		c.v[x] = result
		c.pc += 2

	case OpShiftLeft:
		src := c.v[y]
		if c.shiftQuirk {
			src = c.v[x]
		}
		c.v[x] = src << 1
		c.v[flagRegister] = bit.GetBitValue(7, src)
		c.pc += 2

	case OpSkipNotEqualRegister:
		c.skipIf(c.v[x] != c.v[y])

	case OpLoadIndex:
		c.i = instr.NNN
		c.pc += 2

	case OpJumpOffset:
		// the reference adds 2 after the offset jump; preserved as-is
		c.pc = instr.NNN + uint16(c.v[0]) + 2

	case OpRandom:
		c.v[x] = c.randByte() & instr.KK
		c.pc += 2

	case OpDraw:
		sprite := make([]byte, instr.N)
		for row := range sprite {
			sprite[row] = c.readMemory(c.i + uint16(row))
		}

		// read the coordinates before touching VF, which may itself
		// be one of the coordinate registers
		px, py := c.v[x], c.v[y]
		c.v[flagRegister] = 0
		if c.fb.DrawSprite(px, py, sprite) {
			c.v[flagRegister] = 1
		}

		// raised even when no pixel changed
		c.drawFlag = true
		c.pc += 2

	case OpSkipKeyPressed:
		c.skipIf(c.keypad.IsPressed(c.v[x]))

	case OpSkipKeyNotPressed:
		if !c.keypad.IsPressed(c.v[x]) {
			c.pc += 4
		} else {
			// the held key's latch is consumed on the not-taken path,
			// asymmetric with the pressed variant; preserved as-is
			c.keypad.Release(c.v[x])
			c.pc += 2
		}

	case OpLoadDelay:
		c.v[x] = c.delay
		c.pc += 2

	case OpWaitKey:
		// blocking poll: PC stays put until a key is held, so the
		// driver keeps re-executing this instruction every cycle
		if _, pressed := c.keypad.FirstPressed(); pressed {
			c.v[x] = 1
			c.pc += 2
		}

	case OpSetDelay:
		c.delay = c.v[x]
		c.pc += 2

	case OpSetSound:
		c.sound = c.v[x]
		c.pc += 2

	case OpAddIndex:
		c.i += uint16(c.v[x])
		c.pc += 2

	case OpLoadGlyph:
		c.i = memory.GlyphAddress(c.v[x])
		c.pc += 2

	case OpStoreBCD:
		value := c.v[x]
		c.writeMemory(c.i, value/100)
		c.writeMemory(c.i+1, (value/10)%10)
		c.writeMemory(c.i+2, value%10)
		c.pc += 2

	case OpStoreRegisters:
		// copies V0..Vx-1, exclusive of Vx itself
		for r := uint16(0); r < uint16(x); r++ {
			c.writeMemory(c.i+r, c.v[r])
		}
		c.pc += 2

	case OpLoadRegisters:
		for r := uint16(0); r < uint16(x); r++ {
			c.v[r] = c.readMemory(c.i + r)
		}
		c.pc += 2

	default:
		return UnknownOpcodeError{Opcode: instr.Word, Address: c.pc}
	}

	return nil
}

// skipIf advances PC past the next instruction when the condition holds.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
