package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/grid"
	"github.com/lixenwraith/whack/render"
)

const (
	testWidth  = 80
	testHeight = 30
)

func newContext(s engine.Snapshot) render.RenderContext {
	return render.RenderContext{
		State:  s,
		Layout: render.NewLayout(testWidth, testHeight),
		Width:  testWidth,
		Height: testHeight,
	}
}

func renderAll(ctx render.RenderContext) *render.RenderBuffer {
	buf := render.NewRenderBuffer(ctx.Width, ctx.Height)
	for _, r := range []render.SystemRenderer{
		NewBoardRenderer(),
		NewHUDRenderer(),
		NewFooterRenderer(),
		NewOverlayRenderer(),
	} {
		if vt, ok := r.(render.VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		r.Render(ctx, buf)
	}
	return buf
}

func screenText(buf *render.RenderBuffer) string {
	_, h := buf.Bounds()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.WriteString(buf.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestBoardRendererHoleStates(t *testing.T) {
	s := engine.Snapshot{Phase: engine.PhasePlaying}
	s.Holes[0] = grid.HoleActive
	s.Holes[4] = grid.HoleStruck
	ctx := newContext(s)

	buf := render.NewRenderBuffer(testWidth, testHeight)
	NewBoardRenderer().Render(ctx, buf)

	count := func(rect render.Rect, r rune) int {
		n := 0
		for y := rect.Y; y < rect.Y+rect.H; y++ {
			for x := rect.X; x < rect.X+rect.W; x++ {
				if buf.Get(x, y).Rune == r {
					n++
				}
			}
		}
		return n
	}

	if count(ctx.Layout.HoleRect(0), constants.MoleGlyph) == 0 {
		t.Error("Active hole should show the mole glyph")
	}
	if count(ctx.Layout.HoleRect(4), constants.StruckGlyph) == 0 {
		t.Error("Struck hole should show the hit glyph")
	}
	for _, id := range []int{1, 2, 3, 5, 6, 7, 8} {
		rect := ctx.Layout.HoleRect(id)
		if count(rect, constants.MoleGlyph) != 0 || count(rect, constants.StruckGlyph) != 0 {
			t.Errorf("Hidden hole %d should be empty", id)
		}
		if count(rect, constants.HoleGlyph) != rect.W {
			t.Errorf("Hole %d rim incomplete", id)
		}
	}

	label := buf.Row(ctx.Layout.HoleRect(0).Y + constants.HoleHeight - 1)
	if !strings.Contains(label, constants.HoleKeyLabels[0]) {
		t.Errorf("Hole 0 label missing from %q", label)
	}
}

func TestHUDRendererScoreLine(t *testing.T) {
	ctx := newContext(engine.Snapshot{
		Phase:         engine.PhasePlaying,
		Score:         135,
		TimeRemaining: 17,
		HighScore:     400,
	})
	buf := render.NewRenderBuffer(testWidth, testHeight)
	NewHUDRenderer().Render(ctx, buf)

	line := buf.Row(ctx.Layout.OriginY + 1)
	for _, want := range []string{"SCORE 135", "TIME 17", "HIGH 400"} {
		if !strings.Contains(line, want) {
			t.Errorf("Score line %q missing %q", line, want)
		}
	}
	title := buf.Row(ctx.Layout.OriginY)
	if !strings.Contains(title, strings.TrimSpace(constants.TitleText)) {
		t.Errorf("Title row %q", title)
	}
}

func TestHUDRendererIndicator(t *testing.T) {
	tests := []struct {
		name string
		snap engine.Snapshot
		want string
	}{
		{"Combo flash", engine.Snapshot{Phase: engine.PhasePlaying, Combo: 3, ComboFlash: true}, "COMBO! x3"},
		{"Paused", engine.Snapshot{Phase: engine.PhasePlaying, Paused: true, ComboFlash: true}, "PAUSED"},
		{"Plain combo", engine.Snapshot{Phase: engine.PhasePlaying, Combo: 2}, "combo x2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(tt.snap)
			buf := render.NewRenderBuffer(testWidth, testHeight)
			NewHUDRenderer().Render(ctx, buf)

			row := buf.Row(ctx.Layout.OriginY + 2)
			if !strings.Contains(row, tt.want) {
				t.Errorf("Indicator row %q missing %q", row, tt.want)
			}
		})
	}
}

func TestHUDComboFlashStyle(t *testing.T) {
	ctx := newContext(engine.Snapshot{Phase: engine.PhasePlaying, Combo: 4, ComboFlash: true})
	buf := render.NewRenderBuffer(testWidth, testHeight)
	NewHUDRenderer().Render(ctx, buf)

	y := ctx.Layout.OriginY + 2
	row := buf.Row(y)
	x := strings.Index(row, "COMBO!")
	if x < 0 {
		t.Fatalf("Combo text missing from %q", row)
	}
	_, bg, _ := buf.Get(x, y).Style.Decompose()
	if bg != render.RgbComboBg {
		t.Errorf("Combo flash background = %v, want %v", bg, render.RgbComboBg)
	}
}

func TestFooterAudioIndicator(t *testing.T) {
	for _, muted := range []bool{false, true} {
		ctx := newContext(engine.Snapshot{})
		ctx.Muted = muted
		buf := render.NewRenderBuffer(testWidth, testHeight)
		NewFooterRenderer().Render(ctx, buf)

		y := ctx.Layout.FooterY + 1
		_, bg, _ := buf.Get(ctx.Layout.OriginX, y).Style.Decompose()
		want := render.RgbAudioUnmuted
		if muted {
			want = render.RgbAudioMuted
		}
		if bg != want {
			t.Errorf("muted=%t: indicator background %v, want %v", muted, bg, want)
		}
	}
}

func TestOverlayIdle(t *testing.T) {
	ctx := newContext(engine.Snapshot{Phase: engine.PhaseIdle, HighScore: 250, TimeRemaining: 30})
	text := screenText(renderAll(ctx))

	if !strings.Contains(text, constants.IdleHintText) {
		t.Error("Idle overlay should show the start hint")
	}
	if !strings.Contains(text, "high score 250") {
		t.Error("Idle overlay should show the high score")
	}
}

func TestOverlayEndedSummary(t *testing.T) {
	ctx := newContext(engine.Snapshot{
		Phase:     engine.PhaseEnded,
		Score:     120,
		HighScore: 120,
		NewRecord: true,
		Stats:     engine.RoundStats{Spawned: 10, Hits: 8, Misses: 2, BestCombo: 5},
	})
	text := screenText(renderAll(ctx))

	for _, want := range []string{
		constants.NewRecordText,
		"score 120   high 120",
		"hits 8  misses 2  moles 10",
		"best combo 5   accuracy 80%",
		constants.EndedHintText,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Ended overlay missing %q", want)
		}
	}
}

func TestOverlayHiddenWhilePlaying(t *testing.T) {
	ctx := newContext(engine.Snapshot{Phase: engine.PhasePlaying})
	if NewOverlayRenderer().IsVisible(ctx) {
		t.Error("Overlay should be hidden while playing")
	}
}

func TestTooSmallTerminal(t *testing.T) {
	ctx := render.RenderContext{
		State:  engine.Snapshot{Phase: engine.PhasePlaying},
		Layout: render.NewLayout(20, 8),
		Width:  20,
		Height: 8,
	}
	buf := renderAll(ctx)

	if !strings.HasPrefix(buf.Row(0), constants.TooSmallText) {
		t.Errorf("Expected warning, got %q", buf.Row(0))
	}
	for y := 1; y < 8; y++ {
		if strings.TrimSpace(buf.Row(y)) != "" {
			t.Errorf("Row %d should be empty, got %q", y, buf.Row(y))
		}
	}
}

func TestRegisterAllFrame(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(testWidth, testHeight)

	o := render.NewRenderOrchestrator(screen)
	RegisterAll(o)

	s := engine.Snapshot{Phase: engine.PhasePlaying, TimeRemaining: 30}
	s.Holes[8] = grid.HoleActive
	o.RenderFrame(newContext(s))

	rect := render.NewLayout(testWidth, testHeight).HoleRect(8)
	found := false
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			if r, _, _, _ := screen.GetContent(x, y); r == constants.MoleGlyph {
				found = true
			}
		}
	}
	if !found {
		t.Error("Mole glyph not found on the screen in hole 8")
	}
}
