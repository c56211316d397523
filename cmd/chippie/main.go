package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/go-chippie/chippie"
	"github.com/valerio/go-chippie/chippie/backend"
	"github.com/valerio/go-chippie/chippie/backend/headless"
	"github.com/valerio/go-chippie/chippie/backend/sdl2"
	"github.com/valerio/go-chippie/chippie/backend/terminal"
	"github.com/valerio/go-chippie/chippie/display"
	"github.com/valerio/go-chippie/chippie/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "Chippie"
	app.Description = "A simple CHIP-8 emulator"
	app.Usage = "chippie [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.IntFlag{
			Name:  "clock-hz",
			Usage: "Instruction rate in Hz (timers always tick at 60Hz)",
			Value: timing.DefaultClockSpeed,
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Pixel scale factor for the graphical backend",
			Value: display.DefaultPixelScale,
		},
		cli.BoolFlag{
			Name:  "shift-x",
			Usage: "Make shift opcodes operate on Vx in place instead of reading Vy",
		},
		cli.BoolFlag{
			Name:  "sdl",
			Usage: "Use the SDL2 window backend (requires a build with -tags sdl2)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	machine, err := chippie.NewWithFile(romPath, chippie.Config{
		ClockSpeed: c.Int("clock-hz"),
		ShiftQuirk: c.Bool("shift-x"),
	})
	if err != nil {
		return err
	}

	var b backend.Backend
	var limiter timing.Limiter

	switch {
	case c.Bool("headless"):
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		snapshotConfig, err := headless.CreateSnapshotConfig(
			c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return err
		}

		b = headless.New(frames, snapshotConfig)
		limiter = timing.NewNoOpLimiter()
	case c.Bool("sdl"):
		b = sdl2.New()
		limiter = timing.NewTickerLimiter()
	default:
		b = terminal.New()
		limiter = timing.NewTickerLimiter()
	}

	config := backend.Config{
		Title: "Chippie",
		Scale: c.Int("scale"),
	}

	return runLoop(machine, b, limiter, config)
}

// runLoop is the real-time driver: it paces 60Hz frames against the
// wall clock, advances the machine, and feeds backend input back into
// the input manager.
func runLoop(machine *chippie.Chip8, b backend.Backend, limiter timing.Limiter, config backend.Config) error {
	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	running := true
	machine.BindDefaultActions(func() { running = false })

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for running {
		select {
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		default:
		}

		limiter.WaitForNextFrame()

		if err := machine.RunUntilFrame(); err != nil {
			return fmt.Errorf("emulation halted: %w", err)
		}

		events, err := b.Update(machine.GetCurrentFrame(), machine.ConsumeRedraw())
		if err != nil {
			return err
		}
		for _, evt := range events {
			machine.InputManager().Trigger(evt.Action, evt.Type)
		}
	}

	return nil
}
