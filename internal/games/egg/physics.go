package egg

import (
	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// integrate applies gravity and returns the candidate egg box for this frame.
// Only the downward velocity is clamped.
func integrate(s *SimulationState, cfg *config.PhysicsConfig, k float64) core.Rect {
	e := &s.Egg
	e.VY += cfg.Gravity * k
	if e.VY > cfg.MaxFallSpeed {
		e.VY = cfg.MaxFallSpeed
	}
	return core.NewRect(e.X+e.VX*k, e.Y+e.VY*k, e.W, e.H)
}
