package renderers

import (
	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/grid"
	"github.com/lixenwraith/whack/render"
)

// BoardRenderer draws the 3x3 holes
type BoardRenderer struct{}

// NewBoardRenderer creates a board renderer
func NewBoardRenderer() *BoardRenderer {
	return &BoardRenderer{}
}

// IsVisible hides the board when the terminal cannot fit it
func (r *BoardRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Layout.Fits()
}

// Render implements SystemRenderer
func (r *BoardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for id, state := range ctx.State.Holes {
		r.drawHole(buf, ctx.Layout.HoleRect(id), id, state)
	}
}

// drawHole draws one hole: a burrow area, the rim and the key label
//
//	row 0..2  burrow, mole or hit marker
//	row 3     rim
//	row 4     key label
func (r *BoardRenderer) drawHole(buf *render.RenderBuffer, rect render.Rect, id int, state grid.HoleState) {
	base := render.DefaultStyle
	burrow := render.Rect{X: rect.X + 1, Y: rect.Y, W: rect.W - 2, H: rect.H - 2}

	switch state {
	case grid.HoleActive:
		style := base.Foreground(render.RgbMole).Background(render.RgbMoleBg).Bold(true)
		buf.Fill(burrow, ' ', base.Background(render.RgbMoleBg))
		body := render.Rect{X: burrow.X + 2, Y: burrow.Y + 1, W: burrow.W - 4, H: burrow.H - 1}
		buf.Fill(body, constants.MoleGlyph, style)
	case grid.HoleStruck:
		style := base.Foreground(render.RgbStruck).Background(render.RgbStruckBg).Bold(true)
		buf.Fill(burrow, constants.StruckGlyph, style)
	default:
		buf.Fill(burrow, ' ', base.Background(render.RgbHoleHidden))
	}

	rimStyle := base.Foreground(render.RgbHoleRim)
	for x := rect.X; x < rect.X+rect.W; x++ {
		buf.Set(x, rect.Y+rect.H-2, constants.HoleGlyph, rimStyle)
	}

	buf.SetStringCentered(rect.X, rect.Y+rect.H-1, rect.W, constants.HoleKeyLabels[id], base.Foreground(render.RgbHoleLabel))
}
