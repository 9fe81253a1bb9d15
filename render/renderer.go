// Package render draws engine snapshots onto a tcell screen.
package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/vmath"
)

const (
	// PanelWidth is the column count reserved for the history panel on the right
	PanelWidth = 16

	// PanelTitle heads the history panel
	PanelTitle = "LATEST MULTIS:"

	// HelpText is the key legend on the bottom row
	HelpText = "SPACE/W drop  A auto  R funds  P pause  M mute  Q quit"

	pegRune  = '•'
	ballRune = 'o'
)

// Renderer draws the board, balls, balance and history panel
// The board is static; only the snapshot changes between frames
type Renderer struct {
	screen tcell.Screen
	board  *board.Board

	minP, maxP vmath.Vec2

	width, height int
	view          Viewport
}

// NewRenderer sizes the play area to the board plus the drop point
func NewRenderer(screen tcell.Screen, b *board.Board, drop vmath.Vec2) *Renderer {
	minP, maxP := b.Bounds()
	minP.X = min(minP.X, drop.X)
	minP.Y = min(minP.Y, drop.Y)
	maxP.X = max(maxP.X, drop.X)
	maxP.Y = max(maxP.Y, drop.Y)

	r := &Renderer{screen: screen, board: b, minP: minP, maxP: maxP}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	// Row 0 is the HUD and the last row is the help line
	r.view = Fit(0, 1, r.width-PanelWidth, r.height-2, r.minP, r.maxP)
}

// Viewport returns the current play-area mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Draw renders one frame
func (r *Renderer) Draw(s engine.Snapshot) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	// Shake moves every world-space draw; HUD and panel stay put
	shake := vmath.V2(s.ShakeX, s.ShakeY)

	pegStyle := base.Foreground(RgbPeg)
	for _, p := range r.board.Pegs {
		if x, y, ok := r.view.ToCell(p.Position.Add(shake)); ok {
			r.screen.SetContent(x, y, pegRune, nil, pegStyle)
		}
	}

	zoneStyle := base.Foreground(RgbZone).Bold(true)
	for _, z := range r.board.Zones {
		if x, y, ok := r.view.ToCell(z.Position.Add(shake)); ok {
			label := strconv.FormatFloat(z.Power, 'g', -1, 64)
			r.drawText(x-len(label)/2, y, label, zoneStyle)
		}
	}

	for _, b := range s.Balls {
		style := base.Foreground(RgbBall)
		if b.Scored {
			style = base.Foreground(RgbBallScored)
		}
		if x, y, ok := r.view.ToCell(vmath.V2(b.X, b.Y).Add(shake)); ok {
			r.screen.SetContent(x, y, ballRune, nil, style)
		}
	}

	r.drawHUD(s, base)
	r.drawPanel(s, base)
	r.drawText(0, r.height-1, HelpText, base.Foreground(RgbHelp))

	r.screen.Show()
}

// drawHUD writes the balance and mode flags on row 0
func (r *Renderer) drawHUD(s engine.Snapshot, base tcell.Style) {
	x := r.drawText(0, 0, FormatBalance(s.Balance), base.Foreground(RgbBalance).Bold(true))

	flag := func(on bool, text string, color tcell.Color) {
		if on {
			x = r.drawText(x+2, 0, text, base.Foreground(color))
		}
	}
	flag(s.AutoDrop, "AUTO", RgbFlagActive)
	flag(s.Paused, "PAUSED", RgbFlagActive)
	flag(s.Muted, "MUTED", RgbFlagMuted)
}

// drawPanel writes the title and one line per history slot, newest first
func (r *Renderer) drawPanel(s engine.Snapshot, base tcell.Style) {
	x := r.width - PanelWidth + 1
	r.drawText(x, 1, PanelTitle, base.Foreground(RgbPanelTitle))

	valueStyle := base.Foreground(RgbPanelValue)
	for i, line := range HistoryLines(s.History, s.HistoryCap) {
		r.drawText(x, 2+i, line, valueStyle)
	}
}

// drawText writes text clipped to the screen and returns the column after it
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

// FormatBalance renders the balance readout
func FormatBalance(balance float64) string {
	return fmt.Sprintf("$%.0f", balance)
}

// HistoryLines returns exactly capacity lines "x<power>", padding with x0
func HistoryLines(history []float64, capacity int) []string {
	lines := make([]string, capacity)
	for i := range lines {
		v := 0.0
		if i < len(history) {
			v = history[i]
		}
		lines[i] = "x" + strconv.FormatFloat(v, 'g', -1, 64)
	}
	return lines
}
