package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/vmath"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	b, err := board.Generate(cfg.Layout())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return NewRenderer(screen, b, vmath.V2(cfg.Ball.DropX, cfg.Ball.DropY)), screen
}

func readRow(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestHistoryLines(t *testing.T) {
	got := HistoryLines([]float64{49, 2}, 4)
	want := []string{"x49", "x2", "x0", "x0"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("lines = %v, want %v", got, want)
	}
	if n := len(HistoryLines(nil, 9)); n != 9 {
		t.Errorf("empty history gives %d lines, want 9", n)
	}
}

func TestFormatBalance(t *testing.T) {
	cases := map[float64]string{1000: "$1000", 5800: "$5800", 0: "$0", 99.6: "$100"}
	for in, want := range cases {
		if got := FormatBalance(in); got != want {
			t.Errorf("FormatBalance(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDrawHUDAndPanel(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.Draw(engine.Snapshot{
		Balance:    5800,
		History:    []float64{49, 2},
		HistoryCap: 9,
		AutoDrop:   true,
		Muted:      true,
	})

	hud := readRow(screen, 0)
	if !strings.HasPrefix(hud, "$5800") {
		t.Errorf("hud = %q", strings.TrimSpace(hud))
	}
	if !strings.Contains(hud, "AUTO") || !strings.Contains(hud, "MUTED") || strings.Contains(hud, "PAUSED") {
		t.Errorf("flags missing or wrong in %q", strings.TrimSpace(hud))
	}

	if !strings.Contains(readRow(screen, 1), PanelTitle) {
		t.Error("panel title not drawn")
	}
	want := []string{"x49", "x2", "x0", "x0", "x0", "x0", "x0", "x0", "x0"}
	for i, line := range want {
		row := readRow(screen, 2+i)
		if got := strings.TrimSpace(row[len(row)-PanelWidth:]); got != line {
			t.Errorf("panel line %d = %q, want %q", i, got, line)
		}
	}

	if !strings.HasPrefix(readRow(screen, 39), HelpText) {
		t.Error("help line not drawn")
	}
}

func TestDrawBoardAndBalls(t *testing.T) {
	r, screen := newTestRenderer(t)
	view := r.Viewport()

	r.Draw(engine.Snapshot{HistoryCap: 9, Balls: []engine.BallView{{X: 0, Y: 0}}})

	x, y, ok := view.ToCell(vmath.V2(0, 0))
	if !ok {
		t.Fatal("origin outside viewport")
	}
	if ch, _, _, _ := screen.GetContent(x, y); ch != ballRune {
		t.Errorf("ball cell = %q, want %q", ch, ballRune)
	}

	peg := r.board.Pegs[0].Position
	px, py, ok := view.ToCell(peg)
	if !ok {
		t.Fatal("top peg outside viewport")
	}
	if ch, _, _, _ := screen.GetContent(px, py); ch != pegRune {
		t.Errorf("peg cell = %q, want %q", ch, pegRune)
	}

	// Outermost zones carry the top power label
	zx, zy, _ := view.ToCell(r.board.Zones[0].Position)
	if !strings.Contains(readRow(screen, zy)[max(zx-2, 0):zx+3], "31") {
		t.Errorf("zone label missing near (%d,%d): %q", zx, zy, readRow(screen, zy))
	}
}

func TestDrawAppliesShake(t *testing.T) {
	r, screen := newTestRenderer(t)
	view := r.Viewport()

	// Pick a ball position on exact cell centers so rounding cannot flip
	ball := vmath.V2(view.Left+20*view.UnitsPerCol, view.Top-10*view.UnitsPerRow)
	shake := vmath.V2(5*view.UnitsPerCol, -3*view.UnitsPerRow)
	r.Draw(engine.Snapshot{
		HistoryCap: 9,
		Balls:      []engine.BallView{{X: ball.X, Y: ball.Y}},
		ShakeX:     shake.X,
		ShakeY:     shake.Y,
	})

	x, y := view.X+25, view.Y+13
	if ch, _, _, _ := screen.GetContent(x, y); ch != ballRune {
		t.Errorf("shaken ball cell = %q, want %q", ch, ballRune)
	}
	if ch, _, _, _ := screen.GetContent(view.X+20, view.Y+10); ch == ballRune {
		t.Error("ball drawn at unshaken position")
	}
	// HUD is not shaken
	if !strings.HasPrefix(readRow(screen, 0), "$0") {
		t.Error("hud moved with shake")
	}
}

func TestViewportFit(t *testing.T) {
	v := Fit(2, 1, 11, 5, vmath.V2(-50, -20), vmath.V2(50, 20))

	cases := []struct {
		p      vmath.Vec2
		x, y   int
		inside bool
	}{
		{vmath.V2(-50, 20), 2, 1, true},
		{vmath.V2(50, -20), 12, 5, true},
		{vmath.V2(0, 0), 7, 3, true},
		{vmath.V2(60, 0), 0, 0, false},
		{vmath.V2(0, -40), 0, 0, false},
	}
	for _, c := range cases {
		x, y, ok := v.ToCell(c.p)
		if ok != c.inside || (ok && (x != c.x || y != c.y)) {
			t.Errorf("ToCell(%v) = (%d,%d,%v), want (%d,%d,%v)", c.p, x, y, ok, c.x, c.y, c.inside)
		}
	}
}
