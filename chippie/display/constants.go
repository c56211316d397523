package display

import "github.com/valerio/go-chippie/chippie/video"

// Backend scaling and window constants
const (
	// DefaultPixelScale is the default scaling factor for machine pixels
	DefaultPixelScale = 10
	// DefaultWindowWidth is the default window width (display width * scale)
	DefaultWindowWidth = video.FramebufferWidth * DefaultPixelScale // 640
	// DefaultWindowHeight is the default window height (display height * scale)
	DefaultWindowHeight = video.FramebufferHeight * DefaultPixelScale // 320
)

// RGB pixel format constants for the streaming texture
const (
	// RGBBytesPerPixel is the number of bytes per pixel in RGB24 format
	RGBBytesPerPixel = 3
	// PixelOn is the channel value for a lit pixel (white)
	PixelOn = 0xFF
	// PixelOff is the channel value for an unlit pixel (black)
	PixelOff = 0x00
)
