package commands

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"physics-playground/internal/physics"
)

// Controls is the part of a playground session the console drives.
type Controls interface {
	SetCollisions(on bool)
	SetDragSpawn(on bool)
	SetAltVisual(on bool)
	StartAutoSpawn()
	StopAutoSpawn()
	SetAutoSpawnInterval(d time.Duration) error
	Reset()
	Click(x, y float64) *physics.Body
	SetGravity(x, y float64)
	SetBroadphase(bp physics.Broadphase)
}

// Hooks are front-end actions some commands need. Nil hooks make those commands report an error.
type Hooks struct {
	ShowFPS func(show bool)
	Save    func() error
	Print   func(line string)
}

var errOnOff = errors.New("expected --on or --off")

// onOff registers a --on/--off command calling set.
func onOff(r *Registry, name, what string, set func(bool)) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	on := fs.Bool("on", false, "enable "+what)
	off := fs.Bool("off", false, "disable "+what)
	r.Register(name, "cmd "+name+" --on|--off", fs, func() error {
		if *on == *off {
			return errOnOff
		}
		set(*on)
		return nil
	})
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", a, err)
		}
		out[i] = v
	}
	return out, nil
}

// RegisterPlayground adds the playground command set to r:
//
//	cmd collide --on|--off        cmd drag --on|--off        cmd alt --on|--off
//	cmd auto --start|--stop [--interval 500ms]               cmd reset
//	cmd spawn X Y                 cmd gravity X Y            cmd broadphase pairs|grid
//	cmd fps --show|--hide         cmd save                   cmd help
func RegisterPlayground(r *Registry, c Controls, h Hooks) {
	onOff(r, "collide", "body-body collisions", c.SetCollisions)
	onOff(r, "drag", "drag-to-spawn", c.SetDragSpawn)
	onOff(r, "alt", "alternate visual mode", c.SetAltVisual)

	autoFS := flag.NewFlagSet("auto", flag.ContinueOnError)
	start := autoFS.Bool("start", false, "start auto-spawning")
	stop := autoFS.Bool("stop", false, "stop auto-spawning")
	interval := autoFS.Duration("interval", 0, "auto-spawn period, e.g. 500ms")
	r.Register("auto", "cmd auto --start|--stop [--interval 500ms]", autoFS, func() error {
		if *start && *stop {
			return errors.New("--start and --stop are exclusive")
		}
		if *interval != 0 {
			if err := c.SetAutoSpawnInterval(*interval); err != nil {
				return err
			}
		}
		switch {
		case *start:
			c.StartAutoSpawn()
		case *stop:
			c.StopAutoSpawn()
		case *interval == 0:
			return errors.New("expected --start, --stop or --interval")
		}
		return nil
	})

	resetFS := flag.NewFlagSet("reset", flag.ContinueOnError)
	r.Register("reset", "cmd reset", resetFS, func() error {
		c.Reset()
		return nil
	})

	spawnFS := flag.NewFlagSet("spawn", flag.ContinueOnError)
	r.Register("spawn", "cmd spawn X Y", spawnFS, func() error {
		xy, err := parseFloats(spawnFS.Args(), 2)
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		c.Click(xy[0], xy[1])
		return nil
	})

	gravityFS := flag.NewFlagSet("gravity", flag.ContinueOnError)
	r.Register("gravity", "cmd gravity X Y", gravityFS, func() error {
		xy, err := parseFloats(gravityFS.Args(), 2)
		if err != nil {
			return fmt.Errorf("gravity: %w", err)
		}
		c.SetGravity(xy[0], xy[1])
		return nil
	})

	bpFS := flag.NewFlagSet("broadphase", flag.ContinueOnError)
	r.Register("broadphase", "cmd broadphase pairs|grid", bpFS, func() error {
		if bpFS.NArg() != 1 {
			return errors.New("broadphase: expected pairs or grid")
		}
		bp, ok := physics.ParseBroadphase(bpFS.Arg(0))
		if !ok {
			return fmt.Errorf("broadphase: unknown %q", bpFS.Arg(0))
		}
		c.SetBroadphase(bp)
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	show := fpsFS.Bool("show", false, "show the FPS overlay")
	hide := fpsFS.Bool("hide", false, "hide the FPS overlay")
	r.Register("fps", "cmd fps --show|--hide", fpsFS, func() error {
		if h.ShowFPS == nil {
			return errors.New("fps: no overlay in this front end")
		}
		if *show == *hide {
			return errors.New("expected --show or --hide")
		}
		h.ShowFPS(*show)
		return nil
	})

	saveFS := flag.NewFlagSet("save", flag.ContinueOnError)
	r.Register("save", "cmd save", saveFS, func() error {
		if h.Save == nil {
			return errors.New("save: not available")
		}
		return h.Save()
	})

	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	r.Register("help", "cmd help", helpFS, func() error {
		if h.Print == nil {
			return nil
		}
		usages := make([]string, 0, len(r.cmds))
		for _, name := range r.Names() {
			usages = append(usages, r.Usage(name))
		}
		h.Print(strings.Join(usages, "  "))
		return nil
	})
}
