package eyedrop

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/eyedrop-invaders/internal/config"
	"github.com/vovakirdan/eyedrop-invaders/internal/core"
)

// Visual characters for rendering
const (
	ShotChar     = '│'
	TargetFill   = '▓'
	PlayerTop    = '▄'
	PlayerBody   = '█'
	EffectChar   = '✶'
	EffectFade   = '·'
	SeparatorChr = '─'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.engine.Phase() {
	case PhaseIdle:
		g.renderStart(dst)
		return
	case PhaseRunning, PhaseEnded:
		g.renderField(dst)
	}

	if g.paused {
		g.drawCenteredMessage(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	}
	if g.engine.Phase() == PhaseEnded {
		g.renderResult(dst)
	}
}

// cell converts a field position to screen coordinates.
func (g *Game) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / float64(g.cfg.Field.CellWidth)))
	cy := int(math.Floor(y/float64(g.cfg.Field.CellHeight))) + hudRows
	return cx, cy
}

// cells converts a field length to a cell count, at least one.
func cells(length float64, cell int) int {
	return max(1, int(math.Ceil(length/float64(cell))))
}

func (g *Game) renderField(dst *core.Screen) {
	e := g.engine
	w, h := dst.Width(), dst.Height()
	fieldBottom := h - footerRows // First row below the field

	g.renderHUD(dst)
	dst.DrawHLine(0, 1, w, SeparatorChr, core.ColorGray)
	dst.DrawHLine(0, h-2, w, SeparatorChr, core.ColorGray)

	inField := func(y int) bool { return y >= hudRows && y < fieldBottom }

	tw := cells(g.cfg.Target.Width, g.cfg.Field.CellWidth)
	th := cells(g.cfg.Target.Height, g.cfg.Field.CellHeight)
	for _, t := range e.Registry().Targets() {
		x, y := g.cell(t.Pos.X, t.Pos.Y)
		col := t.Condition.Color()
		for row := range th {
			if !inField(y + row) {
				continue
			}
			if row == 0 {
				label := t.Condition.Label()
				if len(label) > tw {
					label = label[:tw]
				}
				dst.DrawTextColored(x, y, fmt.Sprintf("%-*s", tw, label), col)
				continue
			}
			dst.DrawHLine(x, y+row, tw, TargetFill, col)
		}
	}

	for _, p := range e.Registry().Projectiles() {
		x, y := g.cell(p.Pos.X+g.cfg.Shot.Width/2, p.Pos.Y)
		if inField(y) {
			dst.SetColored(x, y, ShotChar, p.Kind.Color())
		}
	}

	for _, fx := range g.effects.Active() {
		g.drawEffect(dst, fx, inField)
	}

	if e.Field().Measurable() {
		pb := e.PlayerBox()
		x, y := g.cell(pb.X, pb.Y)
		pw := cells(pb.W, g.cfg.Field.CellWidth)
		ph := cells(pb.H, g.cfg.Field.CellHeight)
		col := e.Selected().Color()
		for row := range ph {
			if !inField(y + row) {
				continue
			}
			if row == 0 {
				dst.SetColored(x+pw/2, y, PlayerTop, col)
				if pw > 2 {
					dst.SetColored(x+pw/2-1, y, PlayerTop, col)
				}
				continue
			}
			dst.DrawHLine(x, y+row, pw, PlayerBody, col)
		}
	}

	g.renderTreatmentBar(dst, h-1)
}

// drawEffect draws an explosion that shrinks to a dot over its lifetime.
func (g *Game) drawEffect(dst *core.Screen, fx Effect, inField func(int) bool) {
	progress := g.effects.Progress(fx)
	radius := ExplosionRadius * (1 - progress)
	ch := EffectChar
	if progress > 0.5 {
		ch = EffectFade
	}

	cx, cy := g.cell(fx.X, fx.Y)
	rx := int(radius / float64(g.cfg.Field.CellWidth))
	ry := int(radius / float64(g.cfg.Field.CellHeight))
	for dy := -ry; dy <= ry; dy++ {
		if !inField(cy + dy) {
			continue
		}
		for dx := -rx; dx <= rx; dx++ {
			if dx != 0 && dy != 0 {
				continue
			}
			dst.SetColored(cx+dx, cy+dy, ch, fx.Color)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	e := g.engine
	secs := e.TimeRemaining()
	status := fmt.Sprintf("Score: %d  Time: %d:%02d  Correct: %d  Wrong: %d",
		e.Score(), secs/60, secs%60, e.Correct(), e.Wrong())
	dst.DrawTextColored(1, 0, status, core.ColorWhite)

	level := "[" + e.Difficulty().Title() + "]"
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorGray)
}

func (g *Game) renderTreatmentBar(dst *core.Screen, y int) {
	x := 1
	selected := g.engine.Selected()
	for i, t := range Treatments() {
		text := fmt.Sprintf(" %d %s ", i+1, t.Label())
		col := core.ColorGray
		if t == selected {
			text = fmt.Sprintf("[%d %s]", i+1, t.Label())
			col = t.Color()
		}
		dst.DrawTextColored(x, y, text, col)
		x += len(text) + 1
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	h := dst.Height()
	top := max(0, (h-18)/2)

	dst.DrawTextCentered(top, "EYE DROP INVADERS", core.ColorCyan)
	dst.DrawTextCentered(top+1, "Match the drop to the condition", core.ColorGray)

	row := top + 3
	for _, c := range Conditions() {
		line := fmt.Sprintf("%-15s -> %s", c.Label(), c.Requires().Label())
		dst.DrawTextCentered(row, line, c.Color())
		row++
	}

	row++
	for i, d := range config.Difficulties {
		s := g.cfg.Settings(d)
		text := fmt.Sprintf("  %-6s  every %.1fs  speed %.1f  ", d.Title(), s.SpawnEvery().Seconds(), s.TargetSpeed)
		col := core.ColorGray
		if i == g.menuIndex {
			text = ">" + text[1:len(text)-1] + "<"
			col = core.ColorWhite
		}
		dst.DrawTextCentered(row, text, col)
		row++
	}

	row++
	selected := g.engine.Selected()
	dst.DrawTextCentered(row, "Loaded: "+selected.Label(), selected.Color())
	dst.DrawTextCentered(row+2, "Up/Down difficulty  1-5 select  Enter start  Q quit", core.ColorGray)
}

func (g *Game) renderResult(dst *core.Screen) {
	res := g.engine.Result()
	lines := []string{
		fmt.Sprintf("Score: %d", res.Score),
		fmt.Sprintf("Correct: %d  Wrong: %d", res.Correct, res.Wrong),
		fmt.Sprintf("Accuracy: %.0f%%", res.Accuracy*100),
		"Badge: " + res.Badge.String(),
		"Enter or R to play again",
	}
	g.drawCenteredMessage(dst, badgeColor(res.Badge), "ROUND OVER", lines...)
}

func badgeColor(b Badge) core.Color {
	switch b {
	case BadgeLegend:
		return core.ColorGold
	case BadgeHero:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, col core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, col)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, col)
	for i, l := range lines {
		dst.DrawTextColored(boxX+2, boxY+3+i, strings.TrimRight(l, " "), core.ColorWhite)
	}
}
