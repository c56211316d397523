package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chippie/chippie/memory"
)

func TestDisassembleWord(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1ABC, "JP 0xABC"},
		{0x2ABC, "CALL 0xABC"},
		{0x3A42, "SE VA, 0x42"},
		{0x6A42, "LD VA, 0x42"},
		{0x8AB4, "ADD VA, VB"},
		{0x8AB6, "SHR VA, VB"},
		{0xA123, "LD I, 0x123"},
		{0xB123, "JP V0, 0x123"},
		{0xC5F0, "RND V5, 0xF0"},
		{0xD125, "DRW V1, V2, 5"},
		{0xE59E, "SKP V5"},
		{0xE5A1, "SKNP V5"},
		{0xF50A, "LD V5, K"},
		{0xF529, "LD F, V5"},
		{0xF533, "LD B, V5"},
		{0xF555, "LD [I], V5"},
		{0xF565, "LD V5, [I]"},
		{0x8AB9, ".WORD 0x8AB9"},
		{0x00FD, ".WORD 0x00FD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisassembleWord(tt.word), "word 0x%04X", tt.word)
	}
}

func TestDisassembleAt(t *testing.T) {
	mem, err := memory.NewWithData([]byte{0x6A, 0x42, 0xA1, 0x23})
	require.NoError(t, err)

	line := DisassembleAt(memory.ProgramStart, mem)
	assert.Equal(t, uint16(memory.ProgramStart), line.Address)
	assert.Equal(t, uint16(0x6A42), line.Word)
	assert.Equal(t, "LD VA, 0x42", line.Instruction)

	line = DisassembleAt(memory.ProgramStart+2, mem)
	assert.Equal(t, "LD I, 0x123", line.Instruction)
}
