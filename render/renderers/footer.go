package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whack/constants"
	"github.com/lixenwraith/whack/render"
)

// FooterRenderer draws the audio indicator and the controls help below the board
// When the terminal is too small it draws a single warning instead
type FooterRenderer struct{}

// NewFooterRenderer creates a footer renderer
func NewFooterRenderer() *FooterRenderer {
	return &FooterRenderer{}
}

// Render implements SystemRenderer
func (r *FooterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	base := render.DefaultStyle
	l := ctx.Layout

	if !l.Fits() {
		buf.SetString(0, 0, constants.TooSmallText, base.Foreground(render.RgbTimeLow))
		return
	}

	y := l.FooterY + 1

	var audioText string
	var audioBg tcell.Color
	if ctx.Muted {
		audioText, audioBg = constants.AudioMutedText, render.RgbAudioMuted
	} else {
		audioText, audioBg = constants.AudioOnText, render.RgbAudioUnmuted
	}
	x := buf.SetString(l.OriginX, y, audioText, base.Foreground(tcell.ColorBlack).Background(audioBg))

	// Clipped by the buffer on narrow terminals
	buf.SetString(x+1, y, constants.ControlsHelp, base.Foreground(render.RgbHoleLabel))
}
