//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-chippie/chippie/backend"
	"github.com/valerio/go-chippie/chippie/display"
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings.
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed backend, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	config   backend.Config
	running  bool
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{}
}

// Init creates the window and the streaming texture the framebuffer is
// upscaled into.
func (s *Backend) Init(config backend.Config) error {
	s.config = config
	scale := config.Scale
	if scale <= 0 {
		scale = display.DefaultPixelScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture
	s.running = true

	slog.Info("SDL2 backend initialized", "scale", scale)

	return nil
}

// Update processes window events and renders the frame when redraw is set.
func (s *Backend) Update(frame *video.FrameBuffer, redraw bool) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			s.running = false
			events = append(events, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})

		case *sdl.KeyboardEvent:
			act, ok := keyMapping[e.Keysym.Sym]
			if !ok || e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				events = append(events, backend.InputEvent{Action: act, Type: event.Press})
			} else if e.Type == sdl.KEYUP {
				events = append(events, backend.InputEvent{Action: act, Type: event.Release})
			}
		}
	}

	if s.running && redraw {
		if err := s.renderFrame(frame); err != nil {
			return events, err
		}
	}

	return events, nil
}

// Cleanup destroys all SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	bytes, pitch, err := s.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("failed to lock texture: %w", err)
	}

	pixels := frame.ToSlice()
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			value := byte(display.PixelOff)
			if pixels[y*video.FramebufferWidth+x] == 1 {
				value = display.PixelOn
			}

			offset := y*pitch + x*display.RGBBytesPerPixel
			bytes[offset] = value
			bytes[offset+1] = value
			bytes[offset+2] = value
		}
	}
	s.texture.Unlock()

	s.renderer.Clear()
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("failed to copy texture: %w", err)
	}
	s.renderer.Present()

	return nil
}

// keyMapping maps SDL2 keys to actions. The hexadecimal keypad occupies
// the 1234/qwer/asdf/zxcv block, the conventional layout.
var keyMapping = map[sdl.Keycode]action.Action{
	sdl.K_1: action.Key1,
	sdl.K_2: action.Key2,
	sdl.K_3: action.Key3,
	sdl.K_4: action.KeyC,
	sdl.K_q: action.Key4,
	sdl.K_w: action.Key5,
	sdl.K_e: action.Key6,
	sdl.K_r: action.KeyD,
	sdl.K_a: action.Key7,
	sdl.K_s: action.Key8,
	sdl.K_d: action.Key9,
	sdl.K_f: action.KeyE,
	sdl.K_z: action.KeyA,
	sdl.K_x: action.Key0,
	sdl.K_c: action.KeyB,
	sdl.K_v: action.KeyF,

	// Emulator controls
	sdl.K_ESCAPE: action.EmulatorQuit,
	sdl.K_SPACE:  action.EmulatorPauseToggle,
	sdl.K_F5:     action.EmulatorReset,
}
