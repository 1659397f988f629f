// Package egg implements the egg launch simulation: an egg is flung from
// perch to perch up a tall tree-lined course until it lands back in its nest.
package egg

import (
	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// ObjectKind tags every placed entity so collision and rendering dispatch on
// category rather than identity.
type ObjectKind int

const (
	KindEgg ObjectKind = iota
	KindPerch
	KindBranch
	KindTree
	KindNest
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindEgg:
		return "egg"
	case KindPerch:
		return "perch"
	case KindBranch:
		return "branch"
	case KindTree:
		return "tree"
	case KindNest:
		return "nest"
	default:
		return "unknown"
	}
}

// GameObject is any placed entity in world coordinates (y grows downward).
type GameObject struct {
	Kind       ObjectKind
	X, Y       float64
	W, H       float64 // Logical size
	FacingLeft bool
	Sprite     int
	sprites    []config.Size // Per-sprite pixel sizes, fixed at creation
}

// Rect returns the logical bounding box.
func (o *GameObject) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// SpriteRect returns the bounding box of the current sprite. Objects without
// a sprite table use their logical size.
func (o *GameObject) SpriteRect() core.Rect {
	if o.Sprite < 0 || o.Sprite >= len(o.sprites) {
		return o.Rect()
	}
	s := o.sprites[o.Sprite]
	return core.NewRect(o.X, o.Y, s.W, s.H)
}

// PerchID is a stable reference to a perch. Non-negative values index the
// level's perch list; the ground perch has its own reserved ID.
type PerchID int

const (
	NoPerch     PerchID = -1
	GroundPerch PerchID = -2
)

// Perch is a catchable resting point for the egg.
type Perch struct {
	GameObject
	ID         PerchID
	BranchType int // Catalogue index, -1 for the ground perch
	Slot       int // Slot index on the branch type
	Anchor     config.Offset
	HoldingEgg bool
	AnimTimer  float64 // Seconds left in the current non-idle sprite
}

func newPerch(id PerchID, x, y float64, facingLeft bool, anchor config.Offset, sprites []config.Size) Perch {
	idle := sprites[config.SpriteIdle]
	return Perch{
		GameObject: GameObject{
			Kind:       KindPerch,
			X:          x,
			Y:          y,
			W:          idle.W,
			H:          idle.H,
			FacingLeft: facingLeft,
			Sprite:     config.SpriteIdle,
			sprites:    sprites,
		},
		ID:         id,
		BranchType: -1,
		Anchor:     anchor,
	}
}

// EggPosition returns where an egg of width eggW sits while held.
// Anchors are authored for right-facing perches and mirrored otherwise.
func (p *Perch) EggPosition(eggW float64) (float64, float64) {
	y := p.Y + p.Anchor.Y
	if p.FacingLeft {
		return p.X + p.W - p.Anchor.X - eggW, y
	}
	return p.X + p.Anchor.X, y
}

// animate shows a sprite for the given number of seconds.
func (p *Perch) animate(sprite int, seconds float64) {
	p.Sprite = sprite
	p.AnimTimer = seconds
}

// tick counts down the animation timer and falls back to the idle sprite.
func (p *Perch) tick(dt float64) {
	if p.AnimTimer <= 0 {
		return
	}
	p.AnimTimer -= dt
	if p.AnimTimer <= 0 {
		p.AnimTimer = 0
		p.Sprite = config.SpriteIdle
	}
}

// Branch is the tree limb a perch sits on.
type Branch struct {
	GameObject
	Type      int     // Catalogue index
	Extension float64 // Random length added to the base length
}

// Mode is the egg's exclusive motion state.
type Mode int

const (
	ModeInNest Mode = iota // Waiting for release
	ModeHeld               // Attached to the active perch
	ModeFlying             // Under gravity
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInNest:
		return "in_nest"
	case ModeHeld:
		return "held"
	case ModeFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Egg is the single dynamic body.
type Egg struct {
	GameObject
	VX, VY float64
	Mode   Mode
}
