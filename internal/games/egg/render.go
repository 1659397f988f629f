package egg

import (
	"fmt"
	"math"

	"github.com/vovakirdan/egg-launch/internal/config"
	"github.com/vovakirdan/egg-launch/internal/core"
)

// Visual characters for rendering
const (
	TreeChar   = '█'
	BranchChar = '='
	NestChar   = '~'
	EggChar    = 'O'
	TrackChar  = '│'
	MarkerChar = '◄'
	ChargeChar = '▮'
)

// Perch glyphs by sprite slot
var perchGlyphs = [...]rune{'m', 'M', 'W'}

const (
	hudRows      = 1
	sidebarWidth = 8
	minScreenW   = 30
	minScreenH   = 12
)

// view maps world pixels inside the camera window to screen cells.
type view struct {
	x0, y0 int
	w, h   int
	sx, sy float64 // World pixels per cell
	camY   float64
}

func (v view) cell(wx, wy float64) (int, int) {
	return v.x0 + int(math.Floor(wx/v.sx)), v.y0 + int(math.Floor((wy-v.camY)/v.sy))
}

// fill draws a world rect, clipped to the play area. Every visible object
// covers at least one cell.
func (v view) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x1, y1 := v.cell(r.X, r.Y)
	x2, y2 := v.cell(r.Right(), r.Bottom())
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	for y := max(y1, v.y0); y < min(y2, v.y0+v.h); y++ {
		for x := max(x1, v.x0); x < min(x2, v.x0+v.w); x++ {
			dst.SetColor(x, y, ch, c)
		}
	}
}

// Render draws the visible slice of the world, the HUD and the launch gauges.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		dst.DrawTextCentered(dst.Height()/2, msg)
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	s := g.s
	w := g.cfg.World
	v := view{
		x0:   0,
		y0:   hudRows,
		w:    dst.Width() - sidebarWidth,
		h:    dst.Height() - hudRows,
		camY: s.Camera.Offset,
	}
	v.sx = w.ViewportW / float64(v.w)
	v.sy = w.ViewportH / float64(v.h)

	for i := range s.Trees {
		v.fill(dst, s.Trees[i].Rect(), TreeChar, core.ColorBrown)
	}
	for i := range s.Level.Branches {
		v.fill(dst, s.Level.Branches[i].Rect(), BranchChar, core.ColorBrown)
	}
	v.fill(dst, s.Nest.Rect(), NestChar, core.ColorYellow)

	for i := range s.Level.Perches {
		g.drawPerch(dst, v, &s.Level.Perches[i])
	}
	g.drawPerch(dst, v, &s.Ground)

	v.fill(dst, s.Egg.Rect(), EggChar, core.ColorBrightWhite)

	g.renderHUD(dst)
	g.renderGauges(dst, v.w)
	g.renderOverlays(dst, v)
}

func (g *Game) drawPerch(dst *core.Screen, v view, p *Perch) {
	glyph := perchGlyphs[config.SpriteIdle]
	if p.Sprite >= 0 && p.Sprite < len(perchGlyphs) {
		glyph = perchGlyphs[p.Sprite]
	}
	color := core.ColorOrange
	if p.ID == g.s.Active {
		color = core.ColorBrightYellow
	}
	v.fill(dst, p.SpriteRect(), glyph, color)
}

// renderHUD draws the timer, best time and wins on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.s
	dst.DrawText(1, 0, g.Title())

	timer := core.FormatDuration(s.Timer.Ms())
	timerColor := core.ColorGray
	if s.Timer.Active {
		timerColor = core.ColorBrightGreen
	}
	dst.DrawTextColor((dst.Width()-len(timer))/2, 0, timer, timerColor)

	info := fmt.Sprintf("Wins: %d", s.Wins)
	if s.BestMs > 0 {
		info = fmt.Sprintf("Best %s  %s", core.FormatDuration(s.BestMs), info)
	}
	dst.DrawText(dst.Width()-len([]rune(info))-1, 0, info)
}

// renderGauges draws the charge bar and the angle indicator track in the
// sidebar.
func (g *Game) renderGauges(dst *core.Screen, x int) {
	s := g.s
	lc := g.cfg.Launch
	top := hudRows + 1
	h := dst.Height() - top - 2

	dst.DrawVLine(x, hudRows, dst.Height()-hudRows, '┃', core.ColorGray)

	// Charge bar, filled from the bottom
	filled := int(math.Round(s.Launcher.Charge * float64(h)))
	for i := 0; i < h; i++ {
		ch, c := '·', core.ColorGray
		if i < filled {
			ch, c = ChargeChar, core.ColorRed
			if s.Launcher.Charge >= 1 {
				c = core.ColorBrightYellow
			}
		}
		dst.SetColor(x+2, top+h-1-i, ch, c)
	}
	dst.DrawText(x+1, top+h, "PW")

	// Angle track, marker at the indicator position
	dst.DrawVLine(x+5, top, h, TrackChar, core.ColorGray)
	if s.Egg.Mode == ModeHeld {
		pos := int(math.Round(s.Launcher.IndicatorY / lc.TrackHeight * float64(h-1)))
		dst.SetColor(x+6, top+core.Clamp(pos, 0, h-1), MarkerChar, core.ColorCyan)
	}
	dst.DrawText(x+4, top+h, "ANG")

	dir := "->"
	if s.Launcher.LaunchLeft {
		dir = "<-"
	}
	dst.DrawText(x+2, top+h+1, dir)
}

// renderOverlays draws state messages over the play area.
func (g *Game) renderOverlays(dst *core.Screen, v view) {
	s := g.s
	switch {
	case s.Paused:
		g.drawCenteredMessage(dst, v, "PAUSED", "Press P to resume")
	case s.Won:
		g.drawCenteredMessage(dst, v, "BACK IN THE NEST!", core.FormatDuration(s.LastMs), "Launch to go again")
	case s.Egg.Mode == ModeInNest:
		g.drawCenteredMessage(dst, v, "EGG LAUNCH", "Press Enter to drop the egg")
	}
}

// drawCenteredMessage draws a boxed message centered in the play area.
func (g *Game) drawCenteredMessage(dst *core.Screen, v view, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	x := v.x0 + (v.w-boxW)/2
	y := v.y0 + (v.h-boxH)/2

	dst.DrawRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH)
	for i, line := range lines {
		lx := x + (boxW-len([]rune(line)))/2
		dst.DrawText(lx, y+1+i, line)
	}
}
