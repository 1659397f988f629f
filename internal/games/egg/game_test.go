package egg

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
	"github.com/vovakirdan/egg-launch/internal/registry"
)

func newTestGame(t *testing.T, mutate func(*config.EggConfig)) *Game {
	t.Helper()
	cfg := config.DefaultEggConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg, false)
	g.Reset(core.DefaultConfig())
	return g
}

func empty() core.InputFrame {
	return core.NewInputFrame()
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// fly puts the egg in flight at the given position and velocity.
func fly(g *Game, x, y, vx, vy float64) {
	e := &g.s.Egg
	e.Mode = ModeFlying
	e.X, e.Y = x, y
	e.VX, e.VY = vx, vy
}

// dropToGround releases the egg and steps until the ground perch holds it.
func dropToGround(t *testing.T, g *Game) {
	t.Helper()
	g.Step(input(core.ActionRelease))
	for i := 0; i < 1000 && g.s.Egg.Mode != ModeHeld; i++ {
		g.Step(empty())
	}
	if g.s.Egg.Mode != ModeHeld || g.s.Active != GroundPerch {
		t.Fatalf("egg did not land on the ground perch: mode %v, active %d", g.s.Egg.Mode, g.s.Active)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"egg", "egg_random"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResetStartsInNest(t *testing.T) {
	g := newTestGame(t, nil)
	s := g.s

	if s.Egg.Mode != ModeInNest {
		t.Errorf("Mode = %v, expected in_nest", s.Egg.Mode)
	}
	if s.Active != NoPerch || !s.FirstFall || s.Timer.Active {
		t.Errorf("unexpected initial state: active %d, firstFall %v, timer %v", s.Active, s.FirstFall, s.Timer.Active)
	}
	if !s.Nest.Rect().Intersects(s.Egg.Rect()) {
		t.Error("egg should start inside the nest")
	}
	if g.Seed() != config.DefaultEggConfig().Level.Seed {
		t.Errorf("Seed() = %d, expected config seed", g.Seed())
	}

	// Nothing moves before the release
	y := s.Egg.Y
	for i := 0; i < 30; i++ {
		g.Step(empty())
	}
	if s.Egg.Y != y || s.Egg.Mode != ModeInNest {
		t.Error("egg moved while in the nest")
	}
}

func TestFallMatchesClosedForm(t *testing.T) {
	g := newTestGame(t, func(c *config.EggConfig) {
		c.Physics.Gravity = 0.5
		c.Physics.MaxFallSpeed = 30
	})
	g.s.Level.Perches = nil
	fly(g, 400, 0, 0, 0)

	want := 0.0
	for k := 1; k <= 60; k++ {
		want += math.Min(0.5*float64(k), 30)
		g.Step(empty())
	}

	if g.s.Egg.VY != 30 {
		t.Errorf("VY = %v, expected 30", g.s.Egg.VY)
	}
	if g.s.Egg.Y != want {
		t.Errorf("Y = %v, expected %v", g.s.Egg.Y, want)
	}
	if g.s.Egg.X != 400 {
		t.Errorf("X = %v, expected no horizontal drift", g.s.Egg.X)
	}
}

func TestTerminalVelocity(t *testing.T) {
	cfg := config.DefaultEggConfig()
	s := newState(&cfg, 3)
	s.Egg.Mode = ModeFlying

	for i := 0; i < 2000; i++ {
		cand := integrate(s, &cfg.Physics, 1)
		if s.Egg.VY > cfg.Physics.MaxFallSpeed {
			t.Fatalf("frame %d: VY = %v exceeds %v", i, s.Egg.VY, cfg.Physics.MaxFallSpeed)
		}
		s.Egg.X, s.Egg.Y = cand.X, cand.Y
	}
	if s.Egg.VY != cfg.Physics.MaxFallSpeed {
		t.Errorf("VY = %v, expected terminal %v", s.Egg.VY, cfg.Physics.MaxFallSpeed)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wantX float64
		side  int64
	}{
		{"right wall", 514, 5, 516, 1},
		{"left wall", 66, -5, 64, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			fly(g, tc.x, 1000, tc.vx, 0)

			res := g.Step(empty())
			e := g.s.Egg

			if math.Abs(e.VX+tc.vx/2) > 1e-9 {
				t.Errorf("VX = %v, expected %v", e.VX, -tc.vx/2)
			}
			if math.Abs(e.VY-0.25) > 1e-9 {
				t.Errorf("VY = %v, expected gravity halved to 0.25", e.VY)
			}
			if e.X != tc.wantX {
				t.Errorf("X = %v, expected clamp to %v", e.X, tc.wantX)
			}
			if e.Y != 1000.5 {
				t.Errorf("Y = %v, expected raw integrated 1000.5", e.Y)
			}
			if len(res.Events) != 1 || res.Events[0].Kind != core.EventBounce || res.Events[0].Value != tc.side {
				t.Errorf("Events = %+v, expected one bounce on side %d", res.Events, tc.side)
			}
		})
	}
}

func TestLaunchStraightUp(t *testing.T) {
	g := newTestGame(t, func(c *config.EggConfig) { c.Launch.ChargeRate = 0.25 })
	dropToGround(t, g)

	g.HandleAction(core.ActionChargeStart)
	for i := 0; i < 4; i++ {
		g.Step(empty())
	}
	if g.s.Launcher.Charge != 1 {
		t.Fatalf("Charge = %v, expected 1", g.s.Launcher.Charge)
	}

	g.s.Launcher.IndicatorY = 0
	g.HandleAction(core.ActionChargeRelease)

	e := g.s.Egg
	maxPower := g.cfg.Launch.MaxPower
	if e.Mode != ModeFlying {
		t.Fatalf("Mode = %v, expected flying", e.Mode)
	}
	if math.Abs(e.VX) > 1e-9 {
		t.Errorf("VX = %v, expected ~0", e.VX)
	}
	if math.Abs(e.VY+maxPower) > 1e-9 {
		t.Errorf("VY = %v, expected %v", e.VY, -maxPower)
	}
	if !g.s.Timer.Active {
		t.Error("launch should start the timer")
	}
	if g.s.Launcher.State != ChargeIdle || g.s.Launcher.Charge != 0 {
		t.Error("launch should reset the charge controller")
	}
	if g.s.Ground.Sprite != config.SpriteThrowing {
		t.Errorf("ground perch sprite = %d, expected throwing", g.s.Ground.Sprite)
	}
}

func TestLaunchRequiresCharge(t *testing.T) {
	g := newTestGame(t, nil)
	dropToGround(t, g)

	res := g.Step(input(core.ActionChargeRelease))
	if g.s.Egg.Mode != ModeHeld || hasEvent(res.Events, core.EventLaunch) {
		t.Error("release without charging should not launch")
	}

	g.s.Egg.Mode = ModeInNest
	g.HandleAction(core.ActionChargeStart)
	if g.s.Launcher.State != ChargeIdle {
		t.Error("charging should only start while held")
	}
}

func TestDirectionWhileHeld(t *testing.T) {
	g := newTestGame(t, nil)

	g.HandleAction(core.ActionLeft)
	if g.s.Launcher.LaunchLeft {
		t.Error("direction should not change in the nest")
	}

	dropToGround(t, g)
	if g.s.Launcher.LaunchLeft != g.s.Ground.FacingLeft {
		t.Error("catch should sync the launch direction to the perch")
	}

	g.HandleAction(core.ActionLeft)
	if !g.s.Launcher.LaunchLeft || !g.s.Egg.FacingLeft {
		t.Error("left input should aim left")
	}
	g.HandleAction(core.ActionRight)
	if g.s.Launcher.LaunchLeft {
		t.Error("right input should aim right")
	}
}

func TestMissReturnsToGround(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy float64
	}{
		{"below the world", 100, 4800, 0, 5},
		{"off the left edge", -30, 2000, -5, 0},
		{"off the right edge", 605, 2000, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, nil)
			fly(g, tc.x, tc.y, tc.vx, tc.vy)
			g.s.Timer.start()
			g.s.Timer.Elapsed = 3

			res := g.Step(empty())
			s := g.s

			if s.Egg.Mode != ModeHeld || s.Active != GroundPerch {
				t.Errorf("mode %v, active %d, expected held by the ground perch", s.Egg.Mode, s.Active)
			}
			if s.Timer.Active || s.Timer.Elapsed != 0 {
				t.Errorf("timer = %+v, expected reset", s.Timer)
			}
			if s.FirstFall {
				t.Error("first fall should be cleared by a miss")
			}
			if !s.Ground.HoldingEgg {
				t.Error("ground perch should hold the egg")
			}
			if !hasEvent(res.Events, core.EventMiss) || !hasEvent(res.Events, core.EventCatch) {
				t.Errorf("Events = %+v, expected catch and miss", res.Events)
			}
		})
	}
}

func TestPerchCatch(t *testing.T) {
	g := newTestGame(t, nil)
	g.s.FirstFall = false
	p := &g.s.Level.Perches[0]

	fly(g, p.X+5, p.Y-g.s.Egg.H+1, 0, 0)
	res := g.Step(empty())

	s := g.s
	if s.Egg.Mode != ModeHeld || s.Active != p.ID {
		t.Fatalf("mode %v, active %d, expected held by perch %d", s.Egg.Mode, s.Active, p.ID)
	}
	wx, wy := p.EggPosition(s.Egg.W)
	if s.Egg.X != wx || s.Egg.Y != wy {
		t.Errorf("egg at (%v, %v), expected anchor (%v, %v)", s.Egg.X, s.Egg.Y, wx, wy)
	}
	if s.Egg.VX != 0 || s.Egg.VY != 0 {
		t.Error("catch should zero the velocity")
	}
	if s.Launcher.LaunchLeft != p.FacingLeft {
		t.Error("launch direction should follow the perch")
	}
	if p.Sprite != config.SpriteHolding || !p.HoldingEgg {
		t.Errorf("perch sprite %d holding %v, expected holding sprite", p.Sprite, p.HoldingEgg)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventCatch || res.Events[0].Value != int64(p.ID) {
		t.Errorf("Events = %+v, expected catch of perch %d", res.Events, p.ID)
	}

	// The active perch does not catch again
	fly(g, p.X+5, p.Y-g.s.Egg.H+1, 0, 0)
	g.Step(empty())
	if g.s.Egg.Mode != ModeFlying {
		t.Error("active perch should not re-catch the egg")
	}
}

func TestFirstFallIgnoresPerches(t *testing.T) {
	g := newTestGame(t, nil)
	p := &g.s.Level.Perches[0]

	fly(g, p.X+5, p.Y-g.s.Egg.H+1, 0, 0)
	g.Step(empty())
	if g.s.Egg.Mode != ModeFlying {
		t.Error("perches should not catch during the first fall")
	}
}

func TestFirstFallEndsOnGround(t *testing.T) {
	g := newTestGame(t, nil)
	dropToGround(t, g)
	if g.s.FirstFall {
		t.Error("landing on the ground perch should end the first fall")
	}
	if g.s.Timer.Active {
		t.Error("the timer starts on the first launch, not the release")
	}
}

func TestWinOnlyWithTimer(t *testing.T) {
	g := newTestGame(t, nil)
	g.s.FirstFall = false
	nest := g.s.Nest

	// Passing through the nest without a running timer does nothing
	fly(g, nest.X+10, nest.Y+nest.H+4, 0, -5)
	res := g.Step(empty())
	if hasEvent(res.Events, core.EventWin) || g.s.Egg.Mode != ModeFlying {
		t.Fatal("nest should not count without a running timer")
	}

	fly(g, nest.X+10, nest.Y+nest.H+4, 0, -5)
	g.s.Timer.start()
	g.s.Timer.Elapsed = 12.345
	res = g.Step(empty())

	s := g.s
	if !s.Won || s.Wins != 1 || s.LastMs != 12345 || s.BestMs != 12345 {
		t.Errorf("won %v wins %d last %d best %d, expected a 12345ms win", s.Won, s.Wins, s.LastMs, s.BestMs)
	}
	if s.Timer.Active {
		t.Error("win should stop the timer")
	}
	if s.Egg.Mode != ModeHeld || s.Active != GroundPerch {
		t.Errorf("mode %v active %d, expected held at the ground perch", s.Egg.Mode, s.Active)
	}
	if s.Ground.Sprite != config.SpriteIdle {
		t.Error("win reset should not play the catch animation")
	}

	var win *core.Event
	for i := range res.Events {
		if res.Events[i].Kind == core.EventWin {
			win = &res.Events[i]
		}
	}
	if win == nil || win.Value != 12345 {
		t.Errorf("Events = %+v, expected win with 12345ms", res.Events)
	}
	if hasEvent(res.Events, core.EventCatch) {
		t.Error("win reset is not a catch")
	}

	st := g.State()
	if st.Score != 1 || st.BestMs != 12345 || st.TimerOn {
		t.Errorf("State() = %+v", st)
	}
}

func TestModeTransitionsFollowMachine(t *testing.T) {
	allowed := map[[2]Mode]bool{
		{ModeInNest, ModeFlying}: true,
		{ModeFlying, ModeHeld}:   true,
		{ModeHeld, ModeFlying}:   true,
	}

	g := newTestGame(t, nil)
	script := make([]core.InputFrame, 3000)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i == 5:
			script[i].Set(core.ActionRelease)
		case i%200 == 100:
			script[i].Set(core.ActionChargeStart)
		case i%200 == 130:
			script[i].Set(core.ActionImpulse)
		case i%200 == 160:
			script[i].Set(core.ActionChargeRelease)
		case i%400 == 120:
			script[i].Set(core.ActionLeft)
		}
	}

	prev := g.s.Egg.Mode
	seen := map[Mode]bool{prev: true}
	for i, in := range script {
		g.Step(in)
		cur := g.s.Egg.Mode
		if cur != prev && !allowed[[2]Mode{prev, cur}] {
			t.Fatalf("frame %d: illegal transition %v -> %v", i, prev, cur)
		}
		if cur == ModeInNest && prev != ModeInNest {
			t.Fatalf("frame %d: returned to the nest", i)
		}
		seen[cur] = true
		prev = cur
	}

	for _, m := range []Mode{ModeInNest, ModeHeld, ModeFlying} {
		if !seen[m] {
			t.Errorf("mode %v never observed", m)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(input(core.ActionRelease))
	g.Step(input(core.ActionPause))

	snap := g.Snapshot()
	for i := 0; i < 20; i++ {
		res := g.Step(input(core.ActionRelease, core.ActionTeleport))
		if !res.State.Paused {
			t.Fatal("State().Paused should be true")
		}
	}
	after := g.Snapshot()
	if after.Hash() != snap.Hash() {
		t.Error("simulation advanced while paused")
	}

	g.Step(input(core.ActionPause))
	if g.s.Paused || g.s.Tick == snap.Tick {
		t.Error("unpause should resume ticking")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, nil)
	g.s.Wins, g.s.BestMs = 2, 9000
	first := placements(g.s.Level)
	g.Step(input(core.ActionRelease))

	g.Step(input(core.ActionRestart))
	if g.s.Egg.Mode != ModeInNest || g.s.Active != NoPerch || !g.s.FirstFall {
		t.Error("restart should put the egg back in the nest")
	}
	if g.s.Wins != 2 || g.s.BestMs != 9000 {
		t.Error("restart should keep session stats")
	}
	again := placements(g.s.Level)
	for i := range first {
		if first[i] != again[i] {
			t.Fatal("fixed-seed restart should rebuild the same level")
		}
	}
}

func TestRandomSeedPerLevel(t *testing.T) {
	cfg := config.DefaultEggConfig()
	rc := core.DefaultConfig()
	rc.Seed = 99

	a := NewWithConfig(cfg, true)
	a.Reset(rc)
	b := NewWithConfig(cfg, true)
	b.Reset(rc)
	if a.Seed() != b.Seed() {
		t.Error("random mode should still be reproducible from the runtime seed")
	}

	first := a.Seed()
	a.Step(input(core.ActionRestart))
	if a.Seed() == first {
		t.Error("restart in random mode should draw a new seed")
	}
	if a.ID() != "egg_random" {
		t.Errorf("ID() = %q", a.ID())
	}
}

func TestTeleport(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(input(core.ActionTeleport))
	if g.s.Egg.Mode != ModeInNest {
		t.Error("teleport is disabled without debug")
	}

	g = newTestGame(t, func(c *config.EggConfig) { c.Debug = true })
	g.Step(input(core.ActionTeleport))
	if g.s.Egg.Mode != ModeInNest {
		t.Error("teleport should be a no-op while in the nest")
	}

	g.Step(input(core.ActionRelease))
	res := g.Step(input(core.ActionTeleport))
	top := g.s.Level.Top()
	if g.s.Egg.Mode != ModeHeld || g.s.Active != top {
		t.Errorf("mode %v active %d, expected held at top perch %d", g.s.Egg.Mode, g.s.Active, top)
	}
	if !hasEvent(res.Events, core.EventTeleport) {
		t.Errorf("Events = %+v, expected teleport", res.Events)
	}
}

func TestAdvanceScalesWithDt(t *testing.T) {
	g := newTestGame(t, nil)
	g.s.Level.Perches = nil
	fly(g, 300, 1000, 2, 0)

	g.Advance(empty(), 2.0/BaselineHz)

	grav := g.cfg.Physics.Gravity
	if math.Abs(g.s.Egg.VY-2*grav) > 1e-9 {
		t.Errorf("VY = %v, expected %v after two baseline frames", g.s.Egg.VY, 2*grav)
	}
	if math.Abs(g.s.Egg.Y-(1000+4*grav)) > 1e-9 {
		t.Errorf("Y = %v, expected %v", g.s.Egg.Y, 1000+4*grav)
	}
	if math.Abs(g.s.Egg.X-304) > 1e-9 {
		t.Errorf("X = %v, expected 304", g.s.Egg.X)
	}
}

func TestTimerCountsSeconds(t *testing.T) {
	g := newTestGame(t, nil)
	dropToGround(t, g)
	g.s.Timer.start()

	for i := 0; i < 30; i++ {
		g.Advance(empty(), 1.0/30)
	}
	if ms := g.State().ElapsedMs; ms != 1000 {
		t.Errorf("ElapsedMs = %d, expected 1000", ms)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, func(c *config.EggConfig) { c.Debug = true })
		for i := 0; i < 1500; i++ {
			in := core.NewInputFrame()
			switch i % 150 {
			case 3:
				in.Set(core.ActionRelease)
			case 40:
				in.Set(core.ActionChargeStart)
			case 55:
				in.Set(core.ActionImpulse)
			case 77:
				in.Set(core.ActionChargeRelease)
			}
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "00:00.000") {
		t.Error("HUD should show the timer")
	}
	if !strings.ContainsRune(out, EggChar) {
		t.Error("egg should be visible at the start")
	}
	if !strings.ContainsRune(out, TreeChar) {
		t.Error("trees should be visible")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("tiny screens should show a resize hint")
	}
}
