package headless_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chippie/chippie/backend"
	"github.com/valerio/go-chippie/chippie/backend/headless"
	"github.com/valerio/go-chippie/chippie/input/action"
	"github.com/valerio/go-chippie/chippie/input/event"
	"github.com/valerio/go-chippie/chippie/video"
)

func TestHeadlessBackend(t *testing.T) {
	t.Run("quits after max frames", func(t *testing.T) {
		h := headless.New(3, headless.SnapshotConfig{})

		err := h.Init(backend.Config{Title: "Test"})
		require.NoError(t, err)

		frame := video.NewFrameBuffer()

		for i := 0; i < 3; i++ {
			events, err := h.Update(frame, true)
			require.NoError(t, err)

			if i < 2 {
				assert.Empty(t, events)
			} else {
				require.Len(t, events, 1)
				assert.Equal(t, action.EmulatorQuit, events[0].Action)
				assert.Equal(t, event.Press, events[0].Type)
			}
		}

		assert.NoError(t, h.Cleanup())
	})

	t.Run("writes snapshots at the configured interval", func(t *testing.T) {
		dir := t.TempDir()
		h := headless.New(2, headless.SnapshotConfig{
			Enabled:   true,
			Interval:  2,
			Directory: dir,
			ROMName:   "test",
		})

		require.NoError(t, h.Init(backend.Config{}))

		frame := video.NewFrameBuffer()
		frame.SetPixel(0, 0, 1)

		_, err := h.Update(frame, true)
		require.NoError(t, err)
		_, err = h.Update(frame, true)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "test_frame_2.txt"))
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.HasPrefix(content, "# Frame snapshot"))
		assert.Contains(t, content, "█")
	})
}

func TestCreateSnapshotConfig(t *testing.T) {
	t.Run("disabled when interval is zero", func(t *testing.T) {
		config, err := headless.CreateSnapshotConfig(0, "", "some/rom.ch8")
		require.NoError(t, err)
		assert.False(t, config.Enabled)
	})

	t.Run("derives ROM name from path", func(t *testing.T) {
		dir := t.TempDir()
		config, err := headless.CreateSnapshotConfig(5, dir, "roms/pong.ch8")
		require.NoError(t, err)

		assert.True(t, config.Enabled)
		assert.Equal(t, "pong", config.ROMName)
		assert.Equal(t, dir, config.Directory)
	})
}
