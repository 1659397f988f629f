package egg

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
	"github.com/vovakirdan/egg-launch/internal/registry"
)

// BaselineHz is the frame rate every per-frame constant is calibrated for.
const BaselineHz = 60.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the config the game would use, with the preset applied.
func LoadConfig() (config.EggConfig, error) {
	cfg, err := config.LoadEgg(configPath)
	if err != nil {
		return config.DefaultEggConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyEggPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game implements the egg launch game.
type Game struct {
	random bool // New seed for every level

	cfg      config.EggConfig
	override *config.EggConfig // Set by NewWithConfig, skips file loading

	runtime core.RuntimeConfig
	seeds   *rand.Rand
	seed    int64

	s *SimulationState
}

// New creates a game that always plays the configured seed.
func New() *Game {
	return &Game{}
}

// NewRandom creates a game that draws a fresh seed for every level.
func NewRandom() *Game {
	return &Game{random: true}
}

// NewWithConfig creates a game with an explicit config instead of loading
// one from disk.
func NewWithConfig(cfg config.EggConfig, random bool) *Game {
	return &Game{random: random, override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.random {
		return "egg_random"
	}
	return "egg"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.random {
		return "Egg Launch (Random)"
	}
	return "Egg Launch"
}

// Reset initializes the game: config, seed, level and an egg in the nest.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, _ := LoadConfig()
		g.cfg = cfg
	}

	base := runtime.Seed
	if base == 0 {
		base = g.cfg.Level.Seed
		if g.random {
			base = time.Now().UnixNano()
		}
	}
	if g.random {
		g.seeds = rand.New(rand.NewSource(base))
		g.seed = g.seeds.Int63()
	} else {
		g.seed = base
	}

	g.s = newState(&g.cfg, g.seed)
}

// restart builds a new level, keeping session stats.
func (g *Game) restart() {
	if g.random {
		g.seed = g.seeds.Int63()
	}
	wins, best := g.s.Wins, g.s.BestMs
	g.s = newState(&g.cfg, g.seed)
	g.s.Wins, g.s.BestMs = wins, best
}

// Seed returns the seed of the current level.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the active configuration.
func (g *Game) Config() *config.EggConfig {
	return &g.cfg
}

// Sim exposes the simulation state read-only to renderers and tools.
func (g *Game) Sim() *SimulationState {
	return g.s
}

// Charging reports whether a launch charge is in progress.
func (g *Game) Charging() bool {
	return g.s.Launcher.State != ChargeIdle
}

// Step advances the game by one tick of the runtime tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = int(BaselineHz)
	}
	return g.advance(in, g.runtime.FrameSeconds(), BaselineHz/float64(rate))
}

// Advance applies the input and advances the game by dt seconds.
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	return g.advance(in, dt, dt*BaselineHz)
}

func (g *Game) advance(in core.InputFrame, dt, k float64) core.StepResult {
	g.s.events = nil

	for _, a := range in.Ordered() {
		g.HandleAction(a)
	}
	if !g.s.Paused {
		g.update(dt, k)
	}

	return core.StepResult{State: g.State(), Events: g.s.events}
}

// HandleAction applies one input action immediately.
func (g *Game) HandleAction(a core.Action) {
	s := g.s
	switch a {
	case core.ActionPause:
		s.Paused = !s.Paused
		return
	case core.ActionRestart:
		g.restart()
		return
	}
	if s.Paused {
		return
	}

	switch a {
	case core.ActionRelease:
		s.release()
	case core.ActionLeft:
		s.setDirection(true)
	case core.ActionRight:
		s.setDirection(false)
	case core.ActionImpulse:
		if s.Egg.Mode == ModeHeld {
			s.Launcher.impulse(g.cfg.Launch.ImpulseSpeed)
		}
	case core.ActionChargeStart:
		if s.Egg.Mode == ModeHeld {
			s.Launcher.startCharge()
		}
	case core.ActionChargeRelease:
		s.launch(&g.cfg)
	case core.ActionTeleport:
		if g.cfg.Debug {
			s.teleport(&g.cfg)
		}
	}
}

// Update advances the simulation by dt seconds without input.
func (g *Game) Update(dt float64) {
	g.update(dt, dt*BaselineHz)
}

func (g *Game) update(dt, k float64) {
	s := g.s
	cfg := &g.cfg
	s.Tick++

	s.tickPerches(dt)

	switch s.Egg.Mode {
	case ModeHeld:
		s.Launcher.update(&cfg.Launch, k)
		if p := s.Perch(s.Active); p != nil {
			s.Egg.X, s.Egg.Y = p.EggPosition(s.Egg.W)
		}
	case ModeFlying:
		resolve(s, cfg, integrate(s, &cfg.Physics, k))
	}

	s.Timer.advance(dt)
	s.Camera.follow(s.Egg.Y, cfg.World.ViewportH, cfg.World.Height, cfg.Camera.Smoothing, k)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.s
	return core.GameState{
		Score:     s.Wins,
		ElapsedMs: s.Timer.Ms(),
		TimerOn:   s.Timer.Active,
		BestMs:    s.BestMs,
		Paused:    s.Paused,
	}
}

func init() {
	registry.Register("egg", func() registry.Game { return New() })
	registry.Register("egg_random", func() registry.Game { return NewRandom() })
}
