package disasm

import (
	"fmt"

	"github.com/valerio/go-chippie/chippie/bit"
	"github.com/valerio/go-chippie/chippie/cpu"
	"github.com/valerio/go-chippie/chippie/memory"
)

// DisassemblyLine represents a single disassembled instruction
type DisassemblyLine struct {
	Address     uint16
	Word        uint16
	Instruction string
}

// DisassembleAt disassembles the instruction at the given program counter
func DisassembleAt(pc uint16, mem *memory.Memory) DisassemblyLine {
	word := bit.Combine(mem.Read(pc%memory.Size), mem.Read((pc+1)%memory.Size))

	return DisassemblyLine{
		Address:     pc,
		Word:        word,
		Instruction: DisassembleWord(word),
	}
}

// DisassembleWord renders a 16-bit instruction word using the standard
// mnemonics. Words that do not decode render as a raw data directive.
func DisassembleWord(word uint16) string {
	instr, err := cpu.Decode(word)
	if err != nil {
		return fmt.Sprintf(".WORD 0x%04X", word)
	}

	switch instr.Op {
	case cpu.OpClearScreen:
		return "CLS"
	case cpu.OpReturn:
		return "RET"
	case cpu.OpJump:
		return fmt.Sprintf("JP 0x%03X", instr.NNN)
	case cpu.OpCall:
		return fmt.Sprintf("CALL 0x%03X", instr.NNN)
	case cpu.OpSkipEqualImmediate:
		return fmt.Sprintf("SE V%X, 0x%02X", instr.X, instr.KK)
	case cpu.OpSkipNotEqualImmediate:
		return fmt.Sprintf("SNE V%X, 0x%02X", instr.X, instr.KK)
	case cpu.OpSkipEqualRegister:
		return fmt.Sprintf("SE V%X, V%X", instr.X, instr.Y)
	case cpu.OpLoadImmediate:
		return fmt.Sprintf("LD V%X, 0x%02X", instr.X, instr.KK)
	case cpu.OpAddImmediate:
		return fmt.Sprintf("ADD V%X, 0x%02X", instr.X, instr.KK)
	case cpu.OpLoadRegister:
		return fmt.Sprintf("LD V%X, V%X", instr.X, instr.Y)
	case cpu.OpOr:
		return fmt.Sprintf("OR V%X, V%X", instr.X, instr.Y)
	case cpu.OpAnd:
		return fmt.Sprintf("AND V%X, V%X", instr.X, instr.Y)
	case cpu.OpXor:
		return fmt.Sprintf("XOR V%X, V%X", instr.X, instr.Y)
	case cpu.OpAddRegister:
		return fmt.Sprintf("ADD V%X, V%X", instr.X, instr.Y)
	case cpu.OpSubRegister:
		return fmt.Sprintf("SUB V%X, V%X", instr.X, instr.Y)
	case cpu.OpShiftRight:
		return fmt.Sprintf("SHR V%X, V%X", instr.X, instr.Y)
	case cpu.OpSubReverse:
		return fmt.Sprintf("SUBN V%X, V%X", instr.X, instr.Y)
	case cpu.OpShiftLeft:
		return fmt.Sprintf("SHL V%X, V%X", instr.X, instr.Y)
	case cpu.OpSkipNotEqualRegister:
		return fmt.Sprintf("SNE V%X, V%X", instr.X, instr.Y)
	case cpu.OpLoadIndex:
		return fmt.Sprintf("LD I, 0x%03X", instr.NNN)
	case cpu.OpJumpOffset:
		return fmt.Sprintf("JP V0, 0x%03X", instr.NNN)
	case cpu.OpRandom:
		return fmt.Sprintf("RND V%X, 0x%02X", instr.X, instr.KK)
	case cpu.OpDraw:
		return fmt.Sprintf("DRW V%X, V%X, %d", instr.X, instr.Y, instr.N)
	case cpu.OpSkipKeyPressed:
		return fmt.Sprintf("SKP V%X", instr.X)
	case cpu.OpSkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", instr.X)
	case cpu.OpLoadDelay:
		return fmt.Sprintf("LD V%X, DT", instr.X)
	case cpu.OpWaitKey:
		return fmt.Sprintf("LD V%X, K", instr.X)
	case cpu.OpSetDelay:
		return fmt.Sprintf("LD DT, V%X", instr.X)
	case cpu.OpSetSound:
		return fmt.Sprintf("LD ST, V%X", instr.X)
	case cpu.OpAddIndex:
		return fmt.Sprintf("ADD I, V%X", instr.X)
	case cpu.OpLoadGlyph:
		return fmt.Sprintf("LD F, V%X", instr.X)
	case cpu.OpStoreBCD:
		return fmt.Sprintf("LD B, V%X", instr.X)
	case cpu.OpStoreRegisters:
		return fmt.Sprintf("LD [I], V%X", instr.X)
	case cpu.OpLoadRegisters:
		return fmt.Sprintf("LD V%X, [I]", instr.X)
	default:
		return fmt.Sprintf(".WORD 0x%04X", word)
	}
}
