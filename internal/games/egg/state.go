package egg

import (
	"math"

	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// Timer measures a round from the first launch to the nest.
type Timer struct {
	Elapsed float64 // Seconds
	Active  bool
}

// Ms returns the elapsed time in whole milliseconds.
func (t *Timer) Ms() int64 {
	return int64(math.Round(t.Elapsed * 1000))
}

func (t *Timer) start() {
	t.Elapsed = 0
	t.Active = true
}

func (t *Timer) stop() {
	t.Active = false
}

func (t *Timer) reset() {
	t.Elapsed = 0
	t.Active = false
}

func (t *Timer) advance(dt float64) {
	if t.Active {
		t.Elapsed += dt
	}
}

// SimulationState is the whole mutable world. Every update function takes it
// by pointer; nothing in the package keeps state elsewhere.
type SimulationState struct {
	Tick int

	Egg    Egg
	Active PerchID // Perch currently holding or last holding the egg

	Level  *Level
	Ground Perch
	Trees  [2]GameObject // Left, right
	Nest   GameObject

	Launcher Launcher
	Camera   Camera
	Timer    Timer

	FirstFall bool // Perch catches are ignored until the first landing
	Won       bool // Set on the frame the nest is reached, cleared on launch
	Paused    bool

	Wins   int
	LastMs int64
	BestMs int64

	events []core.Event
}

// newState builds the initial state: egg in the nest, fresh level.
func newState(cfg *config.EggConfig, seed int64) *SimulationState {
	w := cfg.World
	s := &SimulationState{
		Active:    NoPerch,
		FirstFall: true,
	}

	s.Trees[0] = GameObject{Kind: KindTree, X: 0, Y: 0, W: w.TreeWidth, H: w.Height, Sprite: -1}
	s.Trees[1] = GameObject{Kind: KindTree, X: w.Width - w.TreeWidth, Y: 0, W: w.TreeWidth, H: w.Height, FacingLeft: true, Sprite: -1}
	s.Nest = GameObject{Kind: KindNest, X: w.Nest.X, Y: w.Nest.Y, W: w.Nest.W, H: w.Nest.H, Sprite: -1}

	sprites := append([]config.Size(nil), cfg.Perch.Sprites...)
	s.Ground = newPerch(GroundPerch, w.GroundPerch.X, w.GroundPerch.Y, false, cfg.Perch.GroundAnchor, sprites)

	s.regenerate(cfg, seed)

	s.Egg = Egg{
		GameObject: GameObject{
			Kind:   KindEgg,
			X:      w.Nest.X + (w.Nest.W-w.Egg.W)/2,
			Y:      w.Nest.Y + w.Nest.H - w.Egg.H,
			W:      w.Egg.W,
			H:      w.Egg.H,
			Sprite: -1,
		},
		Mode: ModeInNest,
	}
	s.Launcher.reset(cfg.Launch.TrackHeight)
	s.Camera.snap(s.Egg.Y, w.ViewportH, w.Height)
	return s
}

// regenerate replaces the level. Any reference to an old perch is dropped.
func (s *SimulationState) regenerate(cfg *config.EggConfig, seed int64) {
	s.Level = GenerateLevel(cfg, seed)
	if s.Active >= 0 {
		s.Active = NoPerch
	}
}

// Perch resolves a perch ID, including the ground perch.
func (s *SimulationState) Perch(id PerchID) *Perch {
	if id == GroundPerch {
		return &s.Ground
	}
	return s.Level.Perch(id)
}

// Events returns the events raised since the last frame began.
func (s *SimulationState) Events() []core.Event {
	return s.events
}

func (s *SimulationState) emit(kind core.EventKind, value int64) {
	s.events = append(s.events, core.Event{Kind: kind, Value: value})
}

// attach puts the egg on a perch: Held, zero velocity, controls reset and
// launch direction taken from the perch.
func (s *SimulationState) attach(cfg *config.EggConfig, id PerchID) *Perch {
	p := s.Perch(id)
	if prev := s.Perch(s.Active); prev != nil {
		prev.HoldingEgg = false
	}

	s.Egg.Mode = ModeHeld
	s.Egg.VX, s.Egg.VY = 0, 0
	s.Egg.X, s.Egg.Y = p.EggPosition(s.Egg.W)
	s.Egg.FacingLeft = p.FacingLeft

	s.Active = id
	p.HoldingEgg = true
	s.Launcher.LaunchLeft = p.FacingLeft
	s.Launcher.reset(cfg.Launch.TrackHeight)
	return p
}

// catch is the Flying -> Held transition.
func (s *SimulationState) catch(cfg *config.EggConfig, id PerchID) {
	p := s.attach(cfg, id)
	p.animate(config.SpriteHolding, cfg.Perch.HoldSeconds)
	s.emit(core.EventCatch, int64(id))
}

// launch is the Held -> Flying transition.
func (s *SimulationState) launch(cfg *config.EggConfig) {
	if s.Egg.Mode != ModeHeld || s.Launcher.State == ChargeIdle {
		return
	}

	s.Egg.VX, s.Egg.VY = s.Launcher.Velocity(&cfg.Launch)
	s.Egg.Mode = ModeFlying
	s.Won = false

	if p := s.Perch(s.Active); p != nil {
		p.HoldingEgg = false
		p.animate(config.SpriteThrowing, cfg.Perch.ThrowSeconds)
	}

	s.Launcher.reset(cfg.Launch.TrackHeight)
	if !s.Timer.Active {
		s.Timer.start()
	}
	s.emit(core.EventLaunch, int64(s.Active))
}

// release is the InNest -> Flying transition.
func (s *SimulationState) release() {
	if s.Egg.Mode != ModeInNest {
		return
	}
	s.Egg.Mode = ModeFlying
	s.Egg.VX, s.Egg.VY = 0, 0
	s.emit(core.EventRelease, 0)
}

// win ends the round and sends the egg back to the ground perch without a
// catch animation.
func (s *SimulationState) win(cfg *config.EggConfig) {
	s.Timer.stop()
	ms := s.Timer.Ms()
	s.Wins++
	s.LastMs = ms
	if s.BestMs == 0 || ms < s.BestMs {
		s.BestMs = ms
	}
	s.Won = true
	s.attach(cfg, GroundPerch)
	s.emit(core.EventWin, ms)
}

// teleport catches the egg at the topmost perch. Debug only.
func (s *SimulationState) teleport(cfg *config.EggConfig) {
	top := s.Level.Top()
	if s.Egg.Mode == ModeInNest || top == NoPerch {
		return
	}
	s.catch(cfg, top)
	s.FirstFall = false
	s.emit(core.EventTeleport, int64(top))
}

// setDirection changes the launch direction while held.
func (s *SimulationState) setDirection(left bool) {
	if s.Egg.Mode != ModeHeld {
		return
	}
	s.Launcher.LaunchLeft = left
	s.Egg.FacingLeft = left
}

// tickPerches advances every perch animation.
func (s *SimulationState) tickPerches(dt float64) {
	s.Ground.tick(dt)
	for i := range s.Level.Perches {
		s.Level.Perches[i].tick(dt)
	}
}
