package video

import "github.com/valerio/go-chippie/chippie/bit"

const (
	// FramebufferWidth is the horizontal resolution of the display.
	FramebufferWidth = 64
	// FramebufferHeight is the vertical resolution of the display.
	FramebufferHeight = 32
	// SpriteWidth is the fixed width in pixels of every sprite row.
	SpriteWidth = 8
)

// FrameBuffer is the 64x32 monochrome display, one byte per pixel
// (0 unlit, 1 lit), row-major. Only the clear and draw operations
// mutate it.
type FrameBuffer struct {
	width  uint
	height uint
	buffer []byte
}

// NewFrameBuffer creates an all-unlit frame buffer at the machine resolution.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		width:  FramebufferWidth,
		height: FramebufferHeight,
		buffer: make([]byte, FramebufferWidth*FramebufferHeight),
	}
}

// GetPixel returns 1 if the pixel at (x, y) is lit, 0 otherwise.
func (fb FrameBuffer) GetPixel(x, y uint) byte {
	return fb.buffer[y*fb.width+x]
}

// SetPixel sets the pixel at (x, y) to lit (1) or unlit (0).
func (fb *FrameBuffer) SetPixel(x, y uint, value byte) {
	fb.buffer[y*fb.width+x] = value
}

// Clear sets every pixel to unlit.
func (fb *FrameBuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = 0
	}
}

// DrawSprite XORs a sprite into the buffer at (x, y). Each byte of the
// sprite is one 8-pixel row, most significant bit leftmost. Coordinates
// wrap around both edges. Returns true if any lit pixel was unlit by
// the draw (collision).
func (fb *FrameBuffer) DrawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	xPos := uint(x)
	yPos := uint(y)

	for row, rowBits := range sprite {
		for col := uint8(0); col < SpriteWidth; col++ {
			pixel := bit.GetBitValue(SpriteWidth-1-col, rowBits)
			targetX := (xPos + uint(col)) % fb.width
			targetY := (yPos + uint(row)) % fb.height
			index := targetY*fb.width + targetX

			if fb.buffer[index] == 1 && pixel == 1 {
				collision = true
			}
			fb.buffer[index] ^= pixel
		}
	}

	return collision
}

// ToSlice returns the underlying pixel buffer.
func (fb *FrameBuffer) ToSlice() []byte {
	return fb.buffer
}
