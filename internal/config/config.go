package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the prefs file read at startup, relative to the working directory.
// A .yaml or .yml extension selects YAML; anything else is JSON.
const DefaultPath = "config/playground.json"

// Window holds the raylib window settings. The tcell front end only reads TargetFPS.
type Window struct {
	Width     int    `json:"width" yaml:"width"`
	Height    int    `json:"height" yaml:"height"`
	Title     string `json:"title" yaml:"title"`
	TargetFPS int    `json:"target_fps" yaml:"target_fps"`
	Resizable bool   `json:"resizable" yaml:"resizable"`
}

// Prefs holds the playground's start-up settings. Runtime toggles (collisions, drag, visual
// mode, auto-spawn) start from these values and can be saved back with Save.
type Prefs struct {
	Window Window `json:"window" yaml:"window"`

	GravityX    float64 `json:"gravity_x" yaml:"gravity_x"`
	GravityY    float64 `json:"gravity_y" yaml:"gravity_y"`
	Restitution float64 `json:"restitution" yaml:"restitution"`
	Radius      float64 `json:"radius" yaml:"radius"`
	MaxDT       float64 `json:"max_dt" yaml:"max_dt"`
	Broadphase  string  `json:"broadphase" yaml:"broadphase"`

	Collisions       bool `json:"collisions" yaml:"collisions"`
	DragSpawn        bool `json:"drag_spawn" yaml:"drag_spawn"`
	AltVisual        bool `json:"alt_visual" yaml:"alt_visual"`
	AutoSpawnMS      int  `json:"auto_spawn_ms" yaml:"auto_spawn_ms"`
	AutoSpawnOnStart bool `json:"auto_spawn_on_start" yaml:"auto_spawn_on_start"`

	ShowFPS bool   `json:"show_fps" yaml:"show_fps"`
	Audio   bool   `json:"audio" yaml:"audio"`
	LogPath string `json:"log_path" yaml:"log_path"`
}

// Default returns the playground defaults: gravity (0,500), restitution 0.7, radius 12,
// collisions on, auto-spawn every 500ms (stopped), audio on.
func Default() Prefs {
	return Prefs{
		Window: Window{
			Width:     960,
			Height:    640,
			Title:     "physics playground",
			TargetFPS: 60,
			Resizable: true,
		},
		GravityX:    0,
		GravityY:    500,
		Restitution: 0.7,
		Radius:      12,
		MaxDT:       0.1,
		Broadphase:  "pairs",
		Collisions:  true,
		AutoSpawnMS: 500,
		Audio:       true,
		LogPath:     "logs/playground.txt",
	}
}

// AutoSpawnInterval returns AutoSpawnMS as a Duration.
func (p Prefs) AutoSpawnInterval() time.Duration {
	return time.Duration(p.AutoSpawnMS) * time.Millisecond
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads prefs from path over Default(), so a file only needs the keys it changes.
// A missing file is not an error. A file that does not parse returns Default() and the error.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read prefs %s: %w", path, err)
	}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p, nil
}

// Save writes prefs to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
