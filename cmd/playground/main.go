package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/audio"
	"physics-playground/internal/commands"
	"physics-playground/internal/config"
	"physics-playground/internal/debug"
	"physics-playground/internal/env"
	"physics-playground/internal/frame"
	"physics-playground/internal/graphics"
	"physics-playground/internal/logger"
	"physics-playground/internal/playground"
	"physics-playground/internal/terminal"
	"physics-playground/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "preferences file (.json or .yaml)")
	envPath := flag.String("env", ".env", "dotenv file loaded before PLAYGROUND_* overrides")
	cssPath := flag.String("css", "", "stylesheet for the control bar (default: built in)")
	flag.Parse()

	if err := run(*configPath, *envPath, *cssPath); err != nil {
		fmt.Fprintf(os.Stderr, "playground: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envPath, cssPath string) error {
	envErr := env.Load(envPath)
	prefs, cfgErr := config.Load(configPath)
	prefs = config.FromEnv(prefs)

	log := logger.New(prefs.LogPath)
	defer log.Close()
	if err := log.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%v (logging to memory only)\n", err)
	}
	if envErr != nil {
		log.Logf("env: %v", envErr)
	}
	if cfgErr != nil {
		log.Logf("config: %v (using defaults)", cfgErr)
	}

	player := audio.New()
	if prefs.Audio {
		if err := player.Init(); err != nil {
			log.Logf("audio disabled: %v", err)
		}
	}
	defer player.Close()

	session := playground.New(prefs, playground.WithLogger(log), playground.WithSound(player))

	window := graphics.Open(prefs.Window)
	defer window.Close()

	dbg := debug.New(prefs.ShowFPS)
	reg := commands.NewRegistry()
	commands.RegisterPlayground(reg, session, commands.Hooks{
		ShowFPS: dbg.SetShowFPS,
		Save: func() error {
			if err := config.Save(configPath, session.Prefs(prefs)); err != nil {
				return err
			}
			log.Logf("Saved preferences to %s", configPath)
			return nil
		},
		Print: log.Log,
	})
	term := terminal.New(log, reg)

	sheet, err := ui.ParseCSS(ui.DefaultCSS)
	if err != nil {
		return fmt.Errorf("default stylesheet: %w", err)
	}
	controls := ui.New(sheet)
	if cssPath != "" {
		if err := controls.LoadCSS(cssPath); err != nil {
			log.Logf("css: %v (using built-in)", err)
		}
	}
	controls.AddNode(ui.ControlBar(session, session)...)
	stats := ui.NewStatsPanel(session)
	controls.AddNode(stats.Node())

	renderer := graphics.NewRenderer(session)
	renderer.AddLayer(func() {
		stats.Update()
		controls.Draw()
	})
	renderer.AddLayer(term.Draw)
	renderer.AddLayer(func() { dbg.Draw(session.Bodies()) })

	window.OnPoll(func() {
		consumed := term.Update()
		handlePointer(session, controls)
		if !consumed {
			handleKeys(session, dbg)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := frame.NewScheduler(window.Clock(), session, renderer)
	sched.MaxDT = prefs.MaxDT
	log.Log("Playground started")
	if err := sched.Run(ctx, window); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// handlePointer sends a press to the buttons first; only presses they do not take spawn a body
// and start a drag.
func handlePointer(s *playground.Session, controls *ui.Engine) {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		controls.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		if controls.HandleClick(pos.X, pos.Y) {
			return
		}
		s.PointerDown()
		s.Click(x, y)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		s.PointerMove(x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		s.PointerUp()
	}
}

// handleKeys maps the single-key shortcuts, active while the console is closed.
func handleKeys(s *playground.Session, dbg *debug.Debug) {
	switch {
	case rl.IsKeyPressed(rl.KeyC):
		s.SetCollisions(!s.Collisions())
	case rl.IsKeyPressed(rl.KeyD):
		s.SetDragSpawn(!s.DragSpawn())
	case rl.IsKeyPressed(rl.KeyA):
		if s.AutoSpawning() {
			s.StopAutoSpawn()
		} else {
			s.StartAutoSpawn()
		}
	case rl.IsKeyPressed(rl.KeyR):
		s.Reset()
	case rl.IsKeyPressed(rl.KeyV):
		s.SetAltVisual(!s.AltVisual())
	case rl.IsKeyPressed(rl.KeyF):
		dbg.SetShowFPS(!dbg.ShowFPS)
	}
}
