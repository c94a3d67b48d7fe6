package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferSetGet(t *testing.T) {
	buf := NewRenderBuffer(10, 4)
	style := DefaultStyle.Foreground(RgbMole)

	buf.Set(3, 2, 'M', style)
	c := buf.Get(3, 2)
	if c.Rune != 'M' || c.Style != style {
		t.Errorf("Get(3,2) = %+v", c)
	}

	// Out of bounds writes are dropped
	buf.Set(-1, 0, 'X', style)
	buf.Set(10, 0, 'X', style)
	buf.Set(0, 4, 'X', style)
	if got := buf.Get(10, 0); got != emptyCell {
		t.Errorf("Out of bounds Get should return empty cell, got %+v", got)
	}
}

func TestRenderBufferClear(t *testing.T) {
	buf := NewRenderBuffer(7, 5)
	buf.Fill(Rect{X: 0, Y: 0, W: 7, H: 5}, '#', DefaultStyle)
	buf.Clear()

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if c := buf.Get(x, y); c != emptyCell {
				t.Fatalf("Cell %d,%d not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestRenderBufferResize(t *testing.T) {
	buf := NewRenderBuffer(4, 4)
	buf.Set(1, 1, 'A', DefaultStyle)

	buf.Resize(2, 2)
	if w, h := buf.Bounds(); w != 2 || h != 2 {
		t.Errorf("Bounds = %d,%d, want 2,2", w, h)
	}
	if c := buf.Get(1, 1); c.Rune != ' ' {
		t.Errorf("Resize should clear, got %q", c.Rune)
	}

	buf.Resize(-3, 5)
	if w, h := buf.Bounds(); w != 0 || h != 5 {
		t.Errorf("Negative width should clamp to 0, got %d,%d", w, h)
	}
}

func TestRenderBufferStrings(t *testing.T) {
	buf := NewRenderBuffer(12, 2)

	end := buf.SetString(1, 0, "abc", DefaultStyle)
	if end != 4 {
		t.Errorf("SetString end = %d, want 4", end)
	}
	if got := buf.Row(0); got != " abc        " {
		t.Errorf("Row(0) = %q", got)
	}

	buf.SetStringCentered(0, 1, 12, "mid", DefaultStyle)
	if got := buf.Row(1); got != "    mid     " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	buf.SetString(10, 0, "xyz", DefaultStyle)
	if got := buf.Row(0); got != " abc      xy" {
		t.Errorf("Clipped Row(0) = %q", got)
	}
}

func TestRenderBufferFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 3)

	buf := NewRenderBuffer(8, 3)
	style := DefaultStyle.Foreground(RgbStruck)
	buf.SetString(2, 1, "hit", style)
	buf.FlushToScreen(screen)

	for i, want := range "hit" {
		r, _, st, _ := screen.GetContent(2+i, 1)
		if r != want {
			t.Errorf("Screen rune at %d = %q, want %q", 2+i, r, want)
		}
		if st != style {
			t.Errorf("Screen style at %d mismatched", 2+i)
		}
	}
}
