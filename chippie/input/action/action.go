package action

// Action represents input actions that can be performed in the emulator
type Action int

const (
	// Hexadecimal keypad keys 0x0-0xF
	Key0 Action = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF

	// Emulator features
	EmulatorPauseToggle
	EmulatorReset
	EmulatorQuit
)
