package config

import (
	_ "embed"
)

//go:embed defaults/egg.yaml
var defaultEggYAML []byte

// DefaultEggConfig returns the default egg launch configuration.
// It mirrors defaults/egg.yaml and is used when the embedded file fails to parse.
func DefaultEggConfig() EggConfig {
	return EggConfig{
		World: WorldConfig{
			Width:       600,
			Height:      4800,
			ViewportW:   600,
			ViewportH:   480,
			TreeWidth:   64,
			Egg:         Size{W: 20, H: 24},
			Nest:        Box{X: 268, Y: 96, W: 64, H: 40},
			GroundPerch: Offset{X: 280, Y: 4680},
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			MaxFallSpeed: 18,
		},
		Launch: LaunchConfig{
			MaxPower:         22,
			ChargeRate:       1.0 / 60.0, // full charge in one second
			TrackHeight:      100,
			IndicatorGravity: 0.3,
			ImpulseSpeed:     6,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
		},
		Level: LevelConfig{
			Seed:         3,
			MinSpacing:   140,
			MaxSpacing:   220,
			MinExtension: 0,
			MaxExtension: 100,
			TopMargin:    320,
			StartSide:    "left",
		},
		Perch: PerchConfig{
			Sprites: []Size{
				{W: 40, H: 40}, // idle
				{W: 44, H: 40}, // holding
				{W: 40, H: 44}, // throwing
			},
			HoldSeconds:  0.5,
			ThrowSeconds: 0.3,
			GroundAnchor: Offset{X: 10, Y: -20},
		},
		Catalog: []BranchType{
			{Name: "twig", Thickness: 10, BaseLength: 60, Slots: []float64{0.5, 0.85}, Anchor: Offset{X: 24, Y: -18}},
			{Name: "bough", Thickness: 14, BaseLength: 90, Slots: []float64{0.35, 0.65, 0.9}, Anchor: Offset{X: 22, Y: -20}},
			{Name: "fork", Thickness: 12, BaseLength: 75, Slots: []float64{0.4, 0.8}, Anchor: Offset{X: 26, Y: -16}},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultEggYAML
}
