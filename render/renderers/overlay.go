package renderers

import (
	"fmt"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/engine"
	"github.com/lixenwraith/whack/render"
)

// OverlayRenderer draws the modal box over the board before the first round and after each round
type OverlayRenderer struct{}

// NewOverlayRenderer creates a new overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// IsVisible returns true outside a playing round
func (r *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Layout.Fits() && ctx.State.Phase != engine.PhasePlaying
}

// Render draws the overlay window centered on the board
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := overlayLines(ctx.State)
	board := ctx.Layout.BoardRect()

	width := min(constants.OverlayWidth, board.W)
	height := len(lines) + 2
	box := render.Rect{
		X: board.X + (board.W-width)/2,
		Y: board.Y + (board.H-height)/2,
		W: width,
		H: height,
	}

	bg := render.DefaultStyle.Background(render.RgbOverlayBg)
	buf.Fill(box, ' ', bg)
	drawBorder(buf, box)

	for i, line := range lines {
		style := bg.Foreground(render.RgbOverlayText)
		if line == constants.NewRecordText {
			style = bg.Foreground(render.RgbNewRecord).Bold(true)
		}
		buf.SetStringCentered(box.X+1, box.Y+1+i, box.W-2, line, style)
	}
}

// overlayLines returns the overlay text for the current phase
func overlayLines(s engine.Snapshot) []string {
	if s.Phase == engine.PhaseIdle {
		return []string{
			"",
			fmt.Sprintf("high score %d", s.HighScore),
			"",
			constants.IdleHintText,
			"",
		}
	}

	lines := make([]string, 0, 6)
	if s.NewRecord {
		lines = append(lines, constants.NewRecordText)
	}
	lines = append(lines,
		fmt.Sprintf("score %d   high %d", s.Score, s.HighScore),
		fmt.Sprintf("hits %d  misses %d  moles %d", s.Stats.Hits, s.Stats.Misses, s.Stats.Spawned),
		fmt.Sprintf("best combo %d   accuracy %d%%", s.Stats.BestCombo, int(s.Stats.Accuracy()*100)),
		"",
		constants.EndedHintText,
	)
	return lines
}

// drawBorder draws a single line frame around the box
func drawBorder(buf *render.RenderBuffer, box render.Rect) {
	style := render.DefaultStyle.Background(render.RgbOverlayBg).Foreground(render.RgbOverlayBorder)
	right := box.X + box.W - 1
	bottom := box.Y + box.H - 1

	for x := box.X + 1; x < right; x++ {
		buf.Set(x, box.Y, '─', style)
		buf.Set(x, bottom, '─', style)
	}
	for y := box.Y + 1; y < bottom; y++ {
		buf.Set(box.X, y, '│', style)
		buf.Set(right, y, '│', style)
	}
	buf.Set(box.X, box.Y, '┌', style)
	buf.Set(right, box.Y, '┐', style)
	buf.Set(box.X, bottom, '└', style)
	buf.Set(right, bottom, '┘', style)
}
