package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_loadsGlyphTable(t *testing.T) {
	m := New()

	// glyph for 0 is 0xF0 0x90 0x90 0x90 0xF0
	assert.Equal(t, byte(0xF0), m.Read(0))
	assert.Equal(t, byte(0x90), m.Read(1))
	assert.Equal(t, byte(0xF0), m.Read(4))

	// glyph for F starts with 0xF0 0x80
	assert.Equal(t, byte(0xF0), m.Read(GlyphAddress(0xF)))
	assert.Equal(t, byte(0x80), m.Read(GlyphAddress(0xF)+1))

	// everything past the glyph table is zeroed
	for addr := uint16(FontSize); addr < Size; addr++ {
		assert.Equal(t, byte(0), m.Read(addr), "address 0x%03X should be zero", addr)
	}
}

func TestLoadROM(t *testing.T) {
	m := New()
	rom := []byte{0x12, 0x34, 0x56}

	err := m.LoadROM(rom)
	require.NoError(t, err)

	assert.Equal(t, byte(0x12), m.Read(ProgramStart))
	assert.Equal(t, byte(0x34), m.Read(ProgramStart+1))
	assert.Equal(t, byte(0x56), m.Read(ProgramStart+2))

	// glyph table is untouched
	assert.Equal(t, byte(0xF0), m.Read(0))
}

func TestLoadROM_fullProgramRegion(t *testing.T) {
	m := New()
	rom := make([]byte, MaxProgramSize)
	rom[0] = 0xAA
	rom[len(rom)-1] = 0xBB

	err := m.LoadROM(rom)
	require.NoError(t, err)

	assert.Equal(t, byte(0xAA), m.Read(ProgramStart))
	assert.Equal(t, byte(0xBB), m.Read(Size-1))
}

func TestLoadROM_tooLarge(t *testing.T) {
	m := New()
	rom := make([]byte, MaxProgramSize+1)

	err := m.LoadROM(rom)
	require.Error(t, err)

	var romErr ROMTooLargeError
	require.ErrorAs(t, err, &romErr)
	assert.Equal(t, MaxProgramSize+1, romErr.Size)
}

func TestGlyphAddress(t *testing.T) {
	tests := []struct {
		digit    uint8
		expected uint16
	}{
		{0x0, 0},
		{0x1, 5},
		{0xA, 50},
		{0xF, 75},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GlyphAddress(tt.digit))
	}
}

func TestReadWrite(t *testing.T) {
	m := New()

	m.Write(0x300, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x300))
}
