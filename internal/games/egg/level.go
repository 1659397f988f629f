package egg

import (
	"math/rand"

	"github.com/vovakirdan/egg-launch/internal/config"
)

// Level is one generated course: branches alternating between the two trees,
// each carrying a single perch. Perches are ordered bottom to top.
type Level struct {
	Seed     int64
	Branches []Branch
	Perches  []Perch
}

// Perch returns the perch with the given ID, or nil if the ID is not part of
// this level.
func (l *Level) Perch(id PerchID) *Perch {
	if id < 0 || int(id) >= len(l.Perches) {
		return nil
	}
	return &l.Perches[id]
}

// Top returns the ID of the highest perch, or NoPerch for an empty level.
func (l *Level) Top() PerchID {
	if len(l.Perches) == 0 {
		return NoPerch
	}
	return PerchID(len(l.Perches) - 1)
}

// GenerateLevel places branches and perches from the ground perch upward.
// The same config and seed always produce the same level.
func GenerateLevel(cfg *config.EggConfig, seed int64) *Level {
	rng := rand.New(rand.NewSource(seed))
	lv := &Level{Seed: seed}

	sprites := append([]config.Size(nil), cfg.Perch.Sprites...)
	idle := sprites[config.SpriteIdle]
	w := cfg.World
	left := cfg.Level.StartSide != "right"

	y := w.GroundPerch.Y
	for {
		y -= uniform(rng, cfg.Level.MinSpacing, cfg.Level.MaxSpacing)
		if y < cfg.Level.TopMargin {
			break
		}

		ext := uniform(rng, cfg.Level.MinExtension, cfg.Level.MaxExtension)
		typeIdx := rng.Intn(len(cfg.Catalog))
		bt := cfg.Catalog[typeIdx]
		slot := rng.Intn(len(bt.Slots))

		length := bt.BaseLength + ext
		along := bt.Slots[slot] * length // Distance from the trunk

		var bx, px float64
		if left {
			bx = w.TreeWidth
			px = bx + along - idle.W/2
		} else {
			bx = w.Width - w.TreeWidth - length
			px = bx + length - along - idle.W/2
		}

		lv.Branches = append(lv.Branches, Branch{
			GameObject: GameObject{
				Kind:       KindBranch,
				X:          bx,
				Y:          y,
				W:          length,
				H:          bt.Thickness,
				FacingLeft: !left,
				Sprite:     -1,
			},
			Type:      typeIdx,
			Extension: ext,
		})

		// Perches face away from their trunk, toward the lane.
		p := newPerch(PerchID(len(lv.Perches)), px, y-idle.H, !left, bt.Anchor, sprites)
		p.BranchType = typeIdx
		p.Slot = slot
		lv.Perches = append(lv.Perches, p)

		left = !left
	}

	return lv
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
