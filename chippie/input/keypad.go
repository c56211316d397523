package input

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Keypad is the latch of 16 virtual key states (0x0-0xF). The input
// collaborator writes it on host key events; opcodes read and consume it.
type Keypad struct {
	keys [KeyCount]bool
}

// NewKeypad creates a keypad with all keys released.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press latches the given key as held down.
func (k *Keypad) Press(key uint8) {
	k.keys[key&0xF] = true
}

// Release clears the latch for the given key.
func (k *Keypad) Release(key uint8) {
	k.keys[key&0xF] = false
}

// IsPressed reports whether the given key is currently latched.
func (k *Keypad) IsPressed(key uint8) bool {
	return k.keys[key&0xF]
}

// FirstPressed scans keys 0x0-0xF in order and returns the first one held
// down, or false if none are.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for key := uint8(0); key < KeyCount; key++ {
		if k.keys[key] {
			return key, true
		}
	}
	return 0, false
}
