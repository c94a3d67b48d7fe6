package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
	buf.SetString(0, 0, r.name, DefaultStyle)
}

func (r *recordingRenderer) IsVisible(ctx RenderContext) bool {
	return r.visible
}

func newSimScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	o := NewRenderOrchestrator(screen)

	var log []string
	o.Register(&recordingRenderer{name: "overlay", log: &log, visible: true}, PriorityOverlay)
	o.Register(&recordingRenderer{name: "board", log: &log, visible: true}, PriorityBoard)
	o.Register(&recordingRenderer{name: "hud1", log: &log, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "hud2", log: &log, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "hidden", log: &log, visible: false}, PriorityBackground)

	o.RenderFrame(RenderContext{Layout: NewLayout(20, 5), Width: 20, Height: 5})

	want := []string{"board", "hud1", "hud2", "overlay"}
	if len(log) != len(want) {
		t.Fatalf("Render order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Render %d = %s, want %s", i, log[i], want[i])
		}
	}

	// Last renderer wins the shared cells
	r, _, _, _ := screen.GetContent(0, 0)
	if r != 'o' {
		t.Errorf("Top-left rune = %q, want 'o'", r)
	}
}

func TestOrchestratorResize(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	o := NewRenderOrchestrator(screen)

	if w, h := o.Size(); w != 20 || h != 5 {
		t.Errorf("Initial size = %d,%d", w, h)
	}
	o.Resize(40, 12)
	if w, h := o.Size(); w != 40 || h != 12 {
		t.Errorf("Resized size = %d,%d", w, h)
	}
}
