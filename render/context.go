package render

import (
	"github.com/lixenwraith/whack/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State  engine.Snapshot
	Layout Layout
	Muted  bool

	// Screen dimensions (terminal size)
	Width  int
	Height int
}

// NewRenderContext captures the game state for one frame
func NewRenderContext(ctx *engine.GameContext, width, height int) RenderContext {
	return RenderContext{
		State:  ctx.Snapshot(),
		Layout: NewLayout(width, height),
		Muted:  ctx.IsMuted.Load(),
		Width:  width,
		Height: height,
	}
}
