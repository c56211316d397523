package cpu

import "github.com/valerio/go-chippie/chippie/bit"

// Op identifies one instruction variant. Decoding produces a closed
// enumeration so execution is a single exhaustive switch instead of
// nested opcode masking in every handler.
type Op int

const (
	OpClearScreen Op = iota
	OpReturn
	OpJump
	OpCall
	OpSkipEqualImmediate
	OpSkipNotEqualImmediate
	OpSkipEqualRegister
	OpLoadImmediate
	OpAddImmediate
	OpLoadRegister
	OpOr
	OpAnd
	OpXor
	OpAddRegister
	OpSubRegister
	OpShiftRight
	OpSubReverse
	OpShiftLeft
	OpSkipNotEqualRegister
	OpLoadIndex
	OpJumpOffset
	OpRandom
	OpDraw
	OpSkipKeyPressed
	OpSkipKeyNotPressed
	OpLoadDelay
	OpWaitKey
	OpSetDelay
	OpSetSound
	OpAddIndex
	OpLoadGlyph
	OpStoreBCD
	OpStoreRegisters
	OpLoadRegisters
)

// Instruction is a fully decoded instruction word.
// X and Y are register indices, N the low nibble, KK the immediate byte
// and NNN the 12-bit address; handlers read whichever fields apply.
type Instruction struct {
	Op   Op
	X    uint8
	Y    uint8
	N    uint8
	KK   uint8
	NNN  uint16
	Word uint16
}

// Decode extracts the operand fields from a 16-bit instruction word and
// classifies it. The top nibble selects a family; families 0x0, 0x8, 0xE
// and 0xF need a second match on the low byte or nibble. An encoding that
// matches no variant is an error carrying the offending word.
func Decode(word uint16) (Instruction, error) {
	instr := Instruction{
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		KK:   bit.Low(word),
		NNN:  word & 0x0FFF,
		Word: word,
	}

	switch word & 0xF000 {
	case 0x0000:
		switch word & 0x00FF {
		case 0xE0:
			instr.Op = OpClearScreen
		case 0xEE:
			instr.Op = OpReturn
		default:
			return Instruction{}, UnknownOpcodeError{Opcode: word}
		}
	case 0x1000:
		instr.Op = OpJump
	case 0x2000:
		instr.Op = OpCall
	case 0x3000:
		instr.Op = OpSkipEqualImmediate
	case 0x4000:
		instr.Op = OpSkipNotEqualImmediate
	case 0x5000:
		instr.Op = OpSkipEqualRegister
	case 0x6000:
		instr.Op = OpLoadImmediate
	case 0x7000:
		instr.Op = OpAddImmediate
	case 0x8000:
		switch word & 0x000F {
		case 0x0:
			instr.Op = OpLoadRegister
		case 0x1:
			instr.Op = OpOr
		case 0x2:
			instr.Op = OpAnd
		case 0x3:
			instr.Op = OpXor
		case 0x4:
			instr.Op = OpAddRegister
		case 0x5:
			instr.Op = OpSubRegister
		case 0x6:
			instr.Op = OpShiftRight
		case 0x7:
			instr.Op = OpSubReverse
		case 0xE:
			instr.Op = OpShiftLeft
		default:
			return Instruction{}, UnknownOpcodeError{Opcode: word}
		}
	case 0x9000:
		instr.Op = OpSkipNotEqualRegister
	case 0xA000:
		instr.Op = OpLoadIndex
	case 0xB000:
		instr.Op = OpJumpOffset
	case 0xC000:
		instr.Op = OpRandom
	case 0xD000:
		instr.Op = OpDraw
	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			instr.Op = OpSkipKeyPressed
		case 0xA1:
			instr.Op = OpSkipKeyNotPressed
		default:
			return Instruction{}, UnknownOpcodeError{Opcode: word}
		}
	case 0xF000:
		switch word & 0x00FF {
		case 0x07:
			instr.Op = OpLoadDelay
		case 0x0A:
			instr.Op = OpWaitKey
		case 0x15:
			instr.Op = OpSetDelay
		case 0x18:
			instr.Op = OpSetSound
		case 0x1E:
			instr.Op = OpAddIndex
		case 0x29:
			instr.Op = OpLoadGlyph
		case 0x33:
			instr.Op = OpStoreBCD
		case 0x55:
			instr.Op = OpStoreRegisters
		case 0x65:
			instr.Op = OpLoadRegisters
		default:
			return Instruction{}, UnknownOpcodeError{Opcode: word}
		}
	default:
		return Instruction{}, UnknownOpcodeError{Opcode: word}
	}

	return instr, nil
}
