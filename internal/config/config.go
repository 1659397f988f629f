// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the egg launch game.
package config

// EggConfig contains all configuration for the egg launch game.
// Every rate is expressed per frame at the 60 Hz calibration baseline.
type EggConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Launch  LaunchConfig  `yaml:"launch"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Perch   PerchConfig   `yaml:"perch"`
	Catalog []BranchType  `yaml:"catalog"`
	Debug   bool          `yaml:"debug"` // Enables the teleport input
}

// Size is a width/height pair in world pixels.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Offset is a relative position in world pixels.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a placed rectangle in world pixels.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// WorldConfig defines the play-field geometry.
type WorldConfig struct {
	Width       float64 `yaml:"width"`        // Play-field width
	Height      float64 `yaml:"height"`       // Total play-field height (many screens)
	ViewportW   float64 `yaml:"viewport_w"`   // Visible width
	ViewportH   float64 `yaml:"viewport_h"`   // Visible height
	TreeWidth   float64 `yaml:"tree_width"`   // Width of the two boundary trees
	Egg         Size    `yaml:"egg"`          // Egg logical size
	Nest        Box     `yaml:"nest"`         // Goal nest, also where the egg starts
	GroundPerch Offset  `yaml:"ground_perch"` // Top-left of the ground perch
}

// PhysicsConfig defines the egg integrator parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vy every frame
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal downward velocity
}

// LaunchConfig defines the charge and angle indicator parameters.
type LaunchConfig struct {
	MaxPower         float64 `yaml:"max_power"`         // Launch speed at full charge
	ChargeRate       float64 `yaml:"charge_rate"`       // Charge change per frame
	TrackHeight      float64 `yaml:"track_height"`      // Angle indicator track length
	IndicatorGravity float64 `yaml:"indicator_gravity"` // Indicator downward acceleration
	ImpulseSpeed     float64 `yaml:"impulse_speed"`     // Upward kick per impulse input
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // Fraction of remaining distance per frame
}

// LevelConfig defines procedural branch placement.
type LevelConfig struct {
	Seed         int64   `yaml:"seed"`
	MinSpacing   float64 `yaml:"min_spacing"`   // Vertical step lower bound
	MaxSpacing   float64 `yaml:"max_spacing"`   // Vertical step upper bound
	MinExtension float64 `yaml:"min_extension"` // Extra branch length lower bound
	MaxExtension float64 `yaml:"max_extension"` // Extra branch length upper bound
	TopMargin    float64 `yaml:"top_margin"`    // Generation stops above this y
	StartSide    string  `yaml:"start_side"`    // "left" or "right"
}

// PerchConfig defines perch sprites and animation timing.
type PerchConfig struct {
	Sprites      []Size  `yaml:"sprites"`       // idle, holding, throwing
	HoldSeconds  float64 `yaml:"hold_seconds"`  // Holding animation length
	ThrowSeconds float64 `yaml:"throw_seconds"` // Throwing animation length
	GroundAnchor Offset  `yaml:"ground_anchor"` // Egg offset on the ground perch
}

// BranchType is one catalogue entry: a branch shape and where perches sit on it.
type BranchType struct {
	Name       string    `yaml:"name"`
	Thickness  float64   `yaml:"thickness"`
	BaseLength float64   `yaml:"base_length"`
	Slots      []float64 `yaml:"slots"`  // Perch centers as fractions along the branch
	Anchor     Offset    `yaml:"anchor"` // Egg offset for a right-facing perch
}
