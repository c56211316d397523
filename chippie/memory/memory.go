package memory

import (
	"fmt"
	"log/slog"
)

const (
	// Size is the total amount of addressable memory.
	Size = 4096
	// ProgramStart is the address where loaded programs begin execution.
	// The region below it is reserved for the interpreter and the glyph table.
	ProgramStart = 0x200
	// FontSize is the size of the built-in glyph table (16 glyphs, 5 bytes each).
	FontSize = 80
	// GlyphSize is the size in bytes of a single hexadecimal digit glyph.
	GlyphSize = 5
	// MaxProgramSize is the largest ROM image that fits in the program region.
	MaxProgramSize = Size - ProgramStart
)

// ROMTooLargeError is returned when a ROM image does not fit the program region.
type ROMTooLargeError struct {
	Size int
}

func (e ROMTooLargeError) Error() string {
	return fmt.Sprintf("ROM size %d exceeds program region of %d bytes", e.Size, MaxProgramSize)
}

// Memory is the flat 4KB address space of the machine.
// [0x000, 0x050) holds the glyph table, [0x200, 0x1000) the loaded program.
type Memory struct {
	data [Size]byte
}

// New creates memory with the glyph table loaded and no program.
func New() *Memory {
	m := &Memory{}
	copy(m.data[:FontSize], fontData[:])
	return m
}

// NewWithData creates memory with the given ROM image loaded at ProgramStart.
func NewWithData(rom []byte) (*Memory, error) {
	m := New()
	if err := m.LoadROM(rom); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadROM copies a ROM image verbatim into the program region.
// Returns a ROMTooLargeError if the image does not fit.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxProgramSize {
		return ROMTooLargeError{Size: len(rom)}
	}

	copy(m.data[ProgramStart:], rom)
	slog.Info("Loaded ROM data", "bytes", len(rom))

	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m.data[address]
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) {
	m.data[address] = value
}

// GlyphAddress returns the address of the glyph for a hexadecimal digit.
func GlyphAddress(digit uint8) uint16 {
	return uint16(digit) * GlyphSize
}
