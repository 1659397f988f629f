package egg

import (
	"math"

	"github.com/vovakirdan/egg-launch/internal/core"
)

// Camera is a vertical follow camera over the world.
type Camera struct {
	Offset float64
	Target float64
}

// follow moves the offset toward the egg by a fraction of the remaining
// distance. k scales the per-frame smoothing to the elapsed time.
func (c *Camera) follow(eggY, viewportH, worldH, smoothing, k float64) {
	c.Target = core.ClampF(eggY-viewportH/2, 0, worldH-viewportH)
	c.Offset += (c.Target - c.Offset) * smoothingAlpha(smoothing, k)
}

// snap jumps straight to the target.
func (c *Camera) snap(eggY, viewportH, worldH float64) {
	c.Target = core.ClampF(eggY-viewportH/2, 0, worldH-viewportH)
	c.Offset = c.Target
}

// smoothingAlpha converts a per-frame fraction to the fraction covered in k
// frames.
func smoothingAlpha(f, k float64) float64 {
	if k == 1 {
		return f
	}
	return 1 - math.Pow(1-f, k)
}
