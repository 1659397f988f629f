package egg

import "math"

// Snapshot contains the game state that determines future frames.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick int   `yaml:"tick"`
	Seed int64 `yaml:"seed"`

	Mode   string  `yaml:"mode"`
	EggX   float64 `yaml:"egg_x"`
	EggY   float64 `yaml:"egg_y"`
	EggVX  float64 `yaml:"egg_vx"`
	EggVY  float64 `yaml:"egg_vy"`
	Active int     `yaml:"active_perch"`

	Charge      float64 `yaml:"charge"`
	ChargeState string  `yaml:"charge_state"`
	IndicatorY  float64 `yaml:"indicator_y"`
	IndicatorV  float64 `yaml:"indicator_v"`
	LaunchLeft  bool    `yaml:"launch_left"`

	Camera    float64 `yaml:"camera"`
	ElapsedMs int64   `yaml:"elapsed_ms"`
	TimerOn   bool    `yaml:"timer_on"`

	FirstFall bool  `yaml:"first_fall"`
	Won       bool  `yaml:"won"`
	Paused    bool  `yaml:"paused"`
	Wins      int   `yaml:"wins"`
	BestMs    int64 `yaml:"best_ms"`
	Perches   int   `yaml:"perches"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.s
	return Snapshot{
		Tick:        s.Tick,
		Seed:        g.seed,
		Mode:        s.Egg.Mode.String(),
		EggX:        s.Egg.X,
		EggY:        s.Egg.Y,
		EggVX:       s.Egg.VX,
		EggVY:       s.Egg.VY,
		Active:      int(s.Active),
		Charge:      s.Launcher.Charge,
		ChargeState: s.Launcher.State.String(),
		IndicatorY:  s.Launcher.IndicatorY,
		IndicatorV:  s.Launcher.IndicatorV,
		LaunchLeft:  s.Launcher.LaunchLeft,
		Camera:      s.Camera.Offset,
		ElapsedMs:   s.Timer.Ms(),
		TimerOn:     s.Timer.Active,
		FirstFall:   s.FirstFall,
		Won:         s.Won,
		Paused:      s.Paused,
		Wins:        s.Wins,
		BestMs:      s.BestMs,
		Perches:     len(s.Level.Perches),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Seed) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.Mode)
	h = h*31 + math.Float64bits(snap.EggX)
	h = h*31 + math.Float64bits(snap.EggY)
	h = h*31 + math.Float64bits(snap.EggVX)
	h = h*31 + math.Float64bits(snap.EggVY)
	h = h*31 + uint64(snap.Active) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Charge)
	h = h*31 + hashString(snap.ChargeState)
	h = h*31 + math.Float64bits(snap.IndicatorY)
	h = h*31 + math.Float64bits(snap.IndicatorV)
	h = h*31 + boolBit(snap.LaunchLeft)
	h = h*31 + math.Float64bits(snap.Camera)
	h = h*31 + uint64(snap.ElapsedMs) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.TimerOn)
	h = h*31 + boolBit(snap.FirstFall)
	h = h*31 + boolBit(snap.Won)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Wins)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BestMs)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Perches) //#nosec G115 -- hash computation
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
