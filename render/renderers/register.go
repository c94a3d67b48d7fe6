package renderers

import (
	"github.com/lixenwraith/whack/render"
)

// RegisterAll adds the standard renderer set to an orchestrator
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBoardRenderer(), render.PriorityBoard)
	o.Register(NewHUDRenderer(), render.PriorityUI)
	o.Register(NewFooterRenderer(), render.PriorityUI)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
}
