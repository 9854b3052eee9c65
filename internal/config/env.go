package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every environment override name.
const EnvPrefix = "PLAYGROUND_"

// FromEnv applies PLAYGROUND_* environment overrides to p using os.Getenv.
func FromEnv(p Prefs) Prefs {
	return ApplyEnv(p, os.Getenv)
}

// ApplyEnv applies overrides read through getenv. Unset or unparsable values leave p unchanged.
//
//	PLAYGROUND_COLLISIONS=false  PLAYGROUND_DRAG=true      PLAYGROUND_ALT_VISUAL=true
//	PLAYGROUND_AUTO_SPAWN_MS=250 PLAYGROUND_AUTO_SPAWN=true PLAYGROUND_AUDIO=false
//	PLAYGROUND_GRAVITY=0,980     PLAYGROUND_BROADPHASE=grid PLAYGROUND_FPS=120
//	PLAYGROUND_SHOW_FPS=true     PLAYGROUND_LOG=logs/run.txt
func ApplyEnv(p Prefs, getenv func(string) string) Prefs {
	get := func(key string) string {
		return strings.TrimSpace(getenv(EnvPrefix + key))
	}
	boolVar := func(key string, dst *bool) {
		if v := get(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	boolVar("COLLISIONS", &p.Collisions)
	boolVar("DRAG", &p.DragSpawn)
	boolVar("ALT_VISUAL", &p.AltVisual)
	boolVar("AUTO_SPAWN", &p.AutoSpawnOnStart)
	boolVar("AUDIO", &p.Audio)
	boolVar("SHOW_FPS", &p.ShowFPS)

	if v := get("AUTO_SPAWN_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			p.AutoSpawnMS = ms
		}
	}
	if v := get("FPS"); v != "" {
		if fps, err := strconv.Atoi(v); err == nil && fps > 0 {
			p.Window.TargetFPS = fps
		}
	}
	if v := get("GRAVITY"); v != "" {
		if x, y, ok := parsePair(v); ok {
			p.GravityX, p.GravityY = x, y
		}
	}
	if v := get("BROADPHASE"); v != "" {
		p.Broadphase = v
	}
	if v := get("LOG"); v != "" {
		p.LogPath = v
	}
	return p
}

func parsePair(s string) (x, y float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}
