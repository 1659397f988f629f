package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sprite slots of PerchConfig.Sprites.
const (
	SpriteIdle = iota
	SpriteHolding
	SpriteThrowing
	spriteCount
)

// Validate checks that the configuration describes a playable world.
func (c EggConfig) Validate() error {
	w := c.World
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return invalid("world size must be positive, got %vx%v", w.Width, w.Height)
	case w.ViewportW <= 0 || w.ViewportH <= 0:
		return invalid("viewport size must be positive, got %vx%v", w.ViewportW, w.ViewportH)
	case w.ViewportH > w.Height:
		return invalid("viewport height %v exceeds world height %v", w.ViewportH, w.Height)
	case w.TreeWidth < 0 || 2*w.TreeWidth >= w.Width:
		return invalid("tree width %v leaves no lane in a %v wide world", w.TreeWidth, w.Width)
	case w.Egg.W <= 0 || w.Egg.H <= 0:
		return invalid("egg size must be positive")
	case w.Nest.W <= 0 || w.Nest.H <= 0:
		return invalid("nest size must be positive")
	}

	if c.Physics.Gravity < 0 || c.Physics.MaxFallSpeed <= 0 {
		return invalid("gravity must be >= 0 and max_fall_speed > 0")
	}

	l := c.Launch
	if l.MaxPower <= 0 || l.ChargeRate <= 0 || l.ChargeRate > 1 {
		return invalid("launch needs max_power > 0 and charge_rate in (0, 1]")
	}
	if l.TrackHeight <= 0 {
		return invalid("launch.track_height must be positive")
	}

	if c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1 {
		return invalid("camera.smoothing must be in (0, 1], got %v", c.Camera.Smoothing)
	}

	lv := c.Level
	switch {
	case lv.MinSpacing <= 0:
		return invalid("level.min_spacing must be positive")
	case lv.MinSpacing > lv.MaxSpacing:
		return invalid("level.min_spacing (%v) > level.max_spacing (%v)", lv.MinSpacing, lv.MaxSpacing)
	case lv.MinExtension < 0 || lv.MinExtension > lv.MaxExtension:
		return invalid("level extension range [%v, %v] is invalid", lv.MinExtension, lv.MaxExtension)
	case lv.StartSide != "left" && lv.StartSide != "right":
		return invalid("level.start_side must be left or right, got %q", lv.StartSide)
	}

	if len(c.Perch.Sprites) != spriteCount {
		return invalid("perch.sprites needs %d entries (idle, holding, throwing), got %d", spriteCount, len(c.Perch.Sprites))
	}
	for i, s := range c.Perch.Sprites {
		if s.W <= 0 || s.H <= 0 {
			return invalid("perch sprite %d has non-positive size", i)
		}
	}

	if len(c.Catalog) == 0 {
		return invalid("catalog is empty")
	}
	for _, bt := range c.Catalog {
		if len(bt.Slots) == 0 {
			return invalid("branch type %q has no perch slots", bt.Name)
		}
		if bt.Thickness <= 0 || bt.BaseLength <= 0 {
			return invalid("branch type %q needs positive thickness and base_length", bt.Name)
		}
		for _, s := range bt.Slots {
			if s < 0 || s > 1 {
				return invalid("branch type %q slot %v outside [0, 1]", bt.Name, s)
			}
		}
		if maxLen := bt.BaseLength + lv.MaxExtension; 2*(w.TreeWidth+maxLen) > w.Width {
			return invalid("branch type %q can close the lane", bt.Name)
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
