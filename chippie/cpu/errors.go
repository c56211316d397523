package cpu

import "fmt"

// UnknownOpcodeError is returned when an instruction word does not decode
// to any known instruction variant.
type UnknownOpcodeError struct {
	Opcode  uint16
	Address uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at address 0x%03X", e.Opcode, e.Address)
}

// PCOutOfRangeError is returned when the program counter leaves the
// program region before a fetch.
type PCOutOfRangeError struct {
	Address uint16
}

func (e PCOutOfRangeError) Error() string {
	return fmt.Sprintf("program counter 0x%04X outside program region", e.Address)
}

// StackOverflowError is returned when a call would exceed the 16-entry
// call stack.
type StackOverflowError struct {
	Address uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("call stack overflow at address 0x%03X", e.Address)
}

// StackUnderflowError is returned when a return executes with no
// matching call on the stack.
type StackUnderflowError struct {
	Address uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("return without matching call at address 0x%03X", e.Address)
}
