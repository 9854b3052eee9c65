package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"physics-playground/internal/audio"
	"physics-playground/internal/config"
	"physics-playground/internal/env"
	"physics-playground/internal/frame"
	"physics-playground/internal/logger"
	"physics-playground/internal/playground"
	"physics-playground/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "preferences file (.json or .yaml)")
	envPath := flag.String("env", ".env", "dotenv file loaded before PLAYGROUND_* overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		fmt.Fprintf(os.Stderr, "playground-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, envPath string) error {
	envErr := env.Load(envPath)
	prefs, cfgErr := config.Load(configPath)
	prefs = config.FromEnv(prefs)

	// The terminal is taken over by tcell, so everything goes to the log file only.
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Restore the terminal before printing a crash, or the trace is unreadable.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Logf("panic: %v", r)
			log.Close()
			fmt.Fprintf(os.Stderr, "\r\npanic: %v\r\n%s\r\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	session := playground.New(prefs, playground.WithLogger(log), playground.WithSound(player))
	input := tui.NewInput(screen, session, prefs.Window.TargetFPS)
	surface := tui.NewSurface(screen, session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := frame.NewScheduler(frame.NewSystemClock(), session, surface)
	sched.MaxDT = prefs.MaxDT
	log.Log("Playground started (terminal)")
	runErr := sched.Run(ctx, input)

	input.Close()
	screen.Fini()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
