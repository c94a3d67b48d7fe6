package renderers

import (
	"fmt"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/render"
)

// HUDRenderer draws the title, score line and the combo or pause indicator above the board
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible hides the HUD when the terminal cannot fit the board
func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Layout.Fits()
}

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	s := ctx.State
	base := render.DefaultStyle

	// Title
	titleStyle := base.Foreground(render.RgbStatusText).Background(render.RgbTitleBg).Bold(true)
	buf.SetStringCentered(l.OriginX, l.OriginY, constants.BoardWidth, constants.TitleText, titleStyle)

	// Score line: SCORE n  TIME n  HIGH n
	labelStyle := base.Foreground(render.RgbHUDLabel)
	valueStyle := base.Foreground(render.RgbHUDText).Bold(true)
	y := l.OriginY + 1
	x := l.OriginX
	x = buf.SetString(x, y, "SCORE ", labelStyle)
	x = buf.SetString(x, y, fmt.Sprintf("%-5d", s.Score), valueStyle)
	x = buf.SetString(x, y, " TIME ", labelStyle)
	x = buf.SetString(x, y, fmt.Sprintf("%2d", s.TimeRemaining), valueStyle.Foreground(render.TimeColor(s.TimeRemaining)))
	x = buf.SetString(x, y, " HIGH ", labelStyle)
	buf.SetString(x, y, fmt.Sprintf("%d", s.HighScore), valueStyle)

	// Indicator row
	y = l.OriginY + 2
	switch {
	case s.Paused:
		style := base.Foreground(render.RgbHUDText).Background(render.RgbPausedBg).Bold(true)
		buf.SetStringCentered(l.OriginX, y, constants.BoardWidth, constants.PausedText, style)
	case s.ComboFlash:
		style := base.Foreground(render.RgbStatusText).Background(render.RgbComboBg).Bold(true)
		text := fmt.Sprintf("%sx%d ", constants.ComboFlashText, s.Combo)
		buf.SetStringCentered(l.OriginX, y, constants.BoardWidth, text, style)
	case s.Combo > 0:
		buf.SetStringCentered(l.OriginX, y, constants.BoardWidth, fmt.Sprintf("combo x%d", s.Combo), labelStyle)
	}
}
