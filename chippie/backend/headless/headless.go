package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-chippie/chippie/backend"
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/video"
)

// Backend implements the Backend interface for automated testing and
// batch processing. It renders nothing and quits after a fixed number
// of frames, optionally dumping text-art snapshots along the way.
type Backend struct {
	config         backend.Config
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	ROMName   string // ROM name for snapshot filenames
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	// Set up debug logging for headless mode
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update counts frames and handles snapshots; it never produces input.
func (h *Backend) Update(frame *video.FrameBuffer, redraw bool) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		// Save final snapshot if enabled and we haven't just saved one
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(frame)
		}

		slog.Info("Headless execution completed", "frames", h.maxFrames)

		// Signal completion via quit event
		events = append(events, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, romPath string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "chippie-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	config.ROMName = filepath.Base(romPath)
	config.ROMName = strings.TrimSuffix(config.ROMName, filepath.Ext(config.ROMName))

	return config, nil
}

// saveSnapshot writes the current frame as text art, one rune per pixel.
func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	name := fmt.Sprintf("%s_frame_%d.txt", h.snapshotConfig.ROMName, h.frameCount)
	path := filepath.Join(h.snapshotConfig.Directory, name)

	if err := writeFrameText(frame, path); err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "path", path, "error", err)
		return
	}

	slog.Info("Saved frame snapshot", "frame", h.frameCount, "path", path)
}

func writeFrameText(frame *video.FrameBuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# Frame snapshot\n")
	fmt.Fprintf(file, "# Resolution: %dx%d pixels\n", video.FramebufferWidth, video.FramebufferHeight)
	fmt.Fprintf(file, "#\n")

	pixels := frame.ToSlice()
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			if pixels[y*video.FramebufferWidth+x] == 1 {
				fmt.Fprint(file, "█")
			} else {
				fmt.Fprint(file, " ")
			}
		}
		fmt.Fprintln(file)
	}

	return nil
}
