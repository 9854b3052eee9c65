package playground

import (
	"time"

	"physics-playground/internal/physics"
)

// Settings are the runtime toggles the control collaborators flip. Session copies them into
// the World at the start of every Step.
type Settings struct {
	Collisions        bool
	DragSpawn         bool
	AltVisual         bool
	AutoSpawnInterval time.Duration
	Broadphase        physics.Broadphase
}

// Mode is the visual mode handed to renderers.
type Mode uint8

const (
	ModePlain Mode = iota
	ModeAlt
)

// Mode returns the visual mode selected by AltVisual.
func (s Settings) Mode() Mode {
	if s.AltVisual {
		return ModeAlt
	}
	return ModePlain
}
