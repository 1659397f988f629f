package egg

import (
	"math"
	"testing"

	"github.com/vovakirdan/egg-launch/internal/config"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

type placement struct {
	bx, by, bw float64
	kind, slot int
	px, py     float64
	left       bool
}

func placements(lv *Level) []placement {
	out := make([]placement, len(lv.Perches))
	for i := range lv.Perches {
		b, p := lv.Branches[i], lv.Perches[i]
		out[i] = placement{b.X, b.Y, b.W, b.Type, p.Slot, p.X, p.Y, p.FacingLeft}
	}
	return out
}

func TestGenerateLevelDeterministic(t *testing.T) {
	cfg := config.DefaultEggConfig()

	a := placements(GenerateLevel(&cfg, 3))
	b := placements(GenerateLevel(&cfg, 3))

	if len(a) == 0 {
		t.Fatal("GenerateLevel() produced no perches")
	}
	if len(a) != len(b) {
		t.Fatalf("perch counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := placements(GenerateLevel(&cfg, 4))
	same := len(a) == len(c)
	for i := 0; same && i < len(a); i++ {
		same = a[i] == c[i]
	}
	if same {
		t.Error("different seeds should produce different levels")
	}
}

func TestGenerateLevelLayout(t *testing.T) {
	cfg := config.DefaultEggConfig()
	lv := GenerateLevel(&cfg, 3)
	idle := cfg.Perch.Sprites[config.SpriteIdle]

	prevY := cfg.World.GroundPerch.Y
	for i := range lv.Perches {
		p := &lv.Perches[i]
		b := &lv.Branches[i]

		if p.ID != PerchID(i) {
			t.Errorf("perch %d has ID %d", i, p.ID)
		}
		if p.Kind != KindPerch || b.Kind != KindBranch {
			t.Errorf("perch %d kinds = %v/%v", i, p.Kind, b.Kind)
		}

		step := prevY - b.Y
		if step < cfg.Level.MinSpacing-eps || step > cfg.Level.MaxSpacing+eps {
			t.Errorf("branch %d step = %v, expected within [%v, %v]", i, step, cfg.Level.MinSpacing, cfg.Level.MaxSpacing)
		}
		prevY = b.Y

		if b.Y < cfg.Level.TopMargin {
			t.Errorf("branch %d at y=%v is above the top margin", i, b.Y)
		}

		// Sides alternate, starting on the left
		onLeft := i%2 == 0
		if onLeft {
			if b.X != cfg.World.TreeWidth {
				t.Errorf("left branch %d X = %v, expected %v", i, b.X, cfg.World.TreeWidth)
			}
		} else if !approx(b.X+b.W, cfg.World.Width-cfg.World.TreeWidth) {
			t.Errorf("right branch %d ends at %v, expected %v", i, b.X+b.W, cfg.World.Width-cfg.World.TreeWidth)
		}
		if p.FacingLeft == onLeft {
			t.Errorf("perch %d FacingLeft = %v, expected %v", i, p.FacingLeft, !onLeft)
		}

		if !approx(p.Y+idle.H, b.Y) {
			t.Errorf("perch %d does not sit on its branch: %v vs %v", i, p.Y+idle.H, b.Y)
		}
		cx := p.X + idle.W/2
		if cx < b.X || cx > b.X+b.W {
			t.Errorf("perch %d center %v is off its branch [%v, %v]", i, cx, b.X, b.X+b.W)
		}
	}
}

func TestGenerateLevelStartSide(t *testing.T) {
	cfg := config.DefaultEggConfig()
	cfg.Level.StartSide = "right"
	lv := GenerateLevel(&cfg, 3)
	if len(lv.Perches) == 0 || !lv.Perches[0].FacingLeft {
		t.Error("first perch should hang on the right tree and face left")
	}
}

func TestLevelPerchLookup(t *testing.T) {
	cfg := config.DefaultEggConfig()
	lv := GenerateLevel(&cfg, 3)

	if lv.Perch(NoPerch) != nil || lv.Perch(GroundPerch) != nil {
		t.Error("reserved IDs should not resolve inside the level")
	}
	if lv.Perch(PerchID(len(lv.Perches))) != nil {
		t.Error("out of range ID should not resolve")
	}
	top := lv.Top()
	if top != PerchID(len(lv.Perches)-1) {
		t.Errorf("Top() = %d, expected %d", top, len(lv.Perches)-1)
	}
	if (&Level{}).Top() != NoPerch {
		t.Error("Top() of an empty level should be NoPerch")
	}
}

func TestEggPositionMirrors(t *testing.T) {
	sprites := config.DefaultEggConfig().Perch.Sprites
	anchor := config.Offset{X: 24, Y: -18}

	right := newPerch(0, 100, 200, false, anchor, sprites)
	x, y := right.EggPosition(20)
	if x != 124 || y != 182 {
		t.Errorf("right-facing EggPosition() = (%v, %v), expected (124, 182)", x, y)
	}

	left := newPerch(1, 100, 200, true, anchor, sprites)
	x, y = left.EggPosition(20)
	// 100 + 40 - 24 - 20
	if x != 96 || y != 182 {
		t.Errorf("left-facing EggPosition() = (%v, %v), expected (96, 182)", x, y)
	}
}

func TestPerchAnimation(t *testing.T) {
	sprites := config.DefaultEggConfig().Perch.Sprites
	p := newPerch(0, 0, 0, false, config.Offset{}, sprites)

	p.animate(config.SpriteHolding, 0.5)
	if got := p.SpriteRect(); got.W != sprites[config.SpriteHolding].W {
		t.Errorf("SpriteRect().W = %v, expected holding width %v", got.W, sprites[config.SpriteHolding].W)
	}
	if p.Rect().W != sprites[config.SpriteIdle].W {
		t.Error("logical size should not follow the sprite")
	}

	p.tick(0.25)
	if p.Sprite != config.SpriteHolding {
		t.Error("animation ended too early")
	}
	p.tick(0.25)
	if p.Sprite != config.SpriteIdle || p.AnimTimer != 0 {
		t.Errorf("after timeout Sprite = %d, AnimTimer = %v", p.Sprite, p.AnimTimer)
	}
}
