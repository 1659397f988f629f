package egg

import (
	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// resolve checks the candidate box against walls, perches, the world edges,
// the ground perch and the nest, in that order, then commits the position if
// the egg is still flying. At most one catch happens per frame.
func resolve(s *SimulationState, cfg *config.EggConfig, cand core.Rect) {
	e := &s.Egg

	// Walls
	left, right := s.Trees[0].Rect(), s.Trees[1].Rect()
	switch {
	case cand.Intersects(left):
		cand.X = left.Right()
		e.VX = core.AbsF(e.VX) / 2
		e.VY /= 2
		s.emit(core.EventBounce, -1)
	case cand.Intersects(right):
		cand.X = right.X - cand.W
		e.VX = -core.AbsF(e.VX) / 2
		e.VY /= 2
		s.emit(core.EventBounce, 1)
	}

	if !s.FirstFall {
		for i := range s.Level.Perches {
			p := &s.Level.Perches[i]
			if p.ID == s.Active || !p.SpriteRect().Intersects(cand) {
				continue
			}
			s.catch(cfg, p.ID)
			return
		}
	}

	w := cfg.World
	if cand.Y > w.Height || cand.Right() < 0 || cand.X > w.ViewportW {
		s.catch(cfg, GroundPerch)
		s.Timer.reset()
		s.FirstFall = false
		s.emit(core.EventMiss, 0)
		return
	}

	if s.Active != GroundPerch && s.Ground.SpriteRect().Intersects(cand) {
		s.catch(cfg, GroundPerch)
		s.FirstFall = false
		return
	}

	if s.Timer.Active && s.Nest.Rect().Intersects(cand) {
		s.win(cfg)
		return
	}

	e.X, e.Y = cand.X, cand.Y
}
