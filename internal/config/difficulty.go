package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// presetScale returns the launch power and branch spacing multipliers.
func presetScale(preset DifficultyPreset) (power, spacing float64) {
	switch preset {
	case DifficultyEasy:
		return 1.15, 0.85
	case DifficultyHard:
		return 0.92, 1.1
	default:
		return 1.0, 1.0
	}
}

// ApplyEggPreset modifies the config based on a difficulty preset.
// Normal and fixed leave the loaded values untouched.
func ApplyEggPreset(cfg *EggConfig, preset DifficultyPreset) {
	power, spacing := presetScale(preset)
	cfg.Launch.MaxPower *= power
	cfg.Level.MinSpacing *= spacing
	cfg.Level.MaxSpacing *= spacing
}
