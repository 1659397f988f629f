package egg

import (
	"math"

	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// ChargeState is the charge oscillator phase.
type ChargeState int

const (
	ChargeIdle ChargeState = iota
	ChargeCharging
	ChargeDepleting
)

// String returns the phase name.
func (c ChargeState) String() string {
	switch c {
	case ChargeCharging:
		return "charging"
	case ChargeDepleting:
		return "depleting"
	default:
		return "idle"
	}
}

// Launcher holds the charge and angle-indicator state used while the egg is
// held. IndicatorY is measured from the top of the track.
type Launcher struct {
	Charge     float64
	State      ChargeState
	IndicatorY float64
	IndicatorV float64
	LaunchLeft bool
}

// reset returns charge and indicator to their defaults. The launch
// direction is owned by the active perch and is left alone.
func (l *Launcher) reset(trackHeight float64) {
	l.Charge = 0
	l.State = ChargeIdle
	l.IndicatorY = trackHeight
	l.IndicatorV = 0
}

// startCharge begins charging from idle.
func (l *Launcher) startCharge() {
	if l.State != ChargeIdle {
		return
	}
	l.State = ChargeCharging
	l.Charge = 0
}

// impulse kicks the indicator upward.
func (l *Launcher) impulse(speed float64) {
	l.IndicatorV = -speed
}

// update advances the charge triangle wave and the indicator by k baseline
// frames.
func (l *Launcher) update(cfg *config.LaunchConfig, k float64) {
	switch l.State {
	case ChargeCharging:
		l.Charge += cfg.ChargeRate * k
		if l.Charge >= 1 {
			l.Charge = 1
			l.State = ChargeDepleting
		}
	case ChargeDepleting:
		l.Charge -= cfg.ChargeRate * k
		if l.Charge <= 0 {
			l.Charge = 0
			l.State = ChargeCharging
		}
	}

	l.IndicatorV += cfg.IndicatorGravity * k
	l.IndicatorY += l.IndicatorV * k
	if l.IndicatorY >= cfg.TrackHeight {
		l.IndicatorY = cfg.TrackHeight
		if l.IndicatorV > 0 {
			l.IndicatorV = 0
		}
	}
	if l.IndicatorY <= 0 {
		l.IndicatorY = 0
		if l.IndicatorV < 0 {
			l.IndicatorV = 0
		}
	}
}

// Angle returns the launch angle in radians above the horizontal: 0 with the
// indicator at the bottom of the track, pi/2 at the top.
func (l *Launcher) Angle(trackHeight float64) float64 {
	p := 1 - core.ClampF(l.IndicatorY/trackHeight, 0, 1)
	return p * math.Pi / 2
}

// Velocity returns the launch velocity for the current charge and angle.
func (l *Launcher) Velocity(cfg *config.LaunchConfig) (float64, float64) {
	angle := l.Angle(cfg.TrackHeight)
	speed := cfg.MaxPower * l.Charge
	vx := speed * math.Cos(angle)
	if l.LaunchLeft {
		vx = -vx
	}
	return vx, -speed * math.Sin(angle)
}
