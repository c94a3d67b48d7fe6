package render

import (
	"github.com/lixenwraith/whack/constants"
)

// Layout maps holes to screen rectangles for a given terminal size
// The board is centered, the HUD sits above it and the footer below
type Layout struct {
	Width  int
	Height int

	OriginX int // Left edge of HUD, board and footer
	OriginY int // Top edge of the HUD
	BoardY  int // Top edge of the first hole row
	FooterY int // First footer row
}

// Rect is a screen rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell is inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// contentHeight is the height of HUD, board and footer together
const contentHeight = constants.HUDHeight + constants.BoardHeight + constants.FooterHeight

// NewLayout computes the layout for a terminal of width x height cells
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	l.OriginX = max((width-constants.BoardWidth)/2, 0)
	l.OriginY = max((height-contentHeight)/2, 0)
	l.BoardY = l.OriginY + constants.HUDHeight
	l.FooterY = l.BoardY + constants.BoardHeight
	return l
}

// Fits reports whether the whole board is visible
func (l Layout) Fits() bool {
	return l.Width >= constants.BoardWidth && l.Height >= contentHeight
}

// BoardRect returns the rectangle covering all holes
func (l Layout) BoardRect() Rect {
	return Rect{X: l.OriginX, Y: l.BoardY, W: constants.BoardWidth, H: constants.BoardHeight}
}

// HoleRect returns the rectangle of hole id, zero Rect when id is out of range
func (l Layout) HoleRect(id int) Rect {
	if id < 0 || id >= constants.HoleCount {
		return Rect{}
	}
	col := id % constants.GridColumns
	row := id / constants.GridColumns
	return Rect{
		X: l.OriginX + col*(constants.HoleWidth+constants.HoleGapX),
		Y: l.BoardY + row*(constants.HoleHeight+constants.HoleGapY),
		W: constants.HoleWidth,
		H: constants.HoleHeight,
	}
}

// HoleAt returns the hole under a screen cell, -1 for gaps and cells off the board
func (l Layout) HoleAt(x, y int) int {
	bx := x - l.OriginX
	by := y - l.BoardY
	if bx < 0 || by < 0 || bx >= constants.BoardWidth || by >= constants.BoardHeight {
		return -1
	}

	strideX := constants.HoleWidth + constants.HoleGapX
	strideY := constants.HoleHeight + constants.HoleGapY
	if bx%strideX >= constants.HoleWidth || by%strideY >= constants.HoleHeight {
		return -1
	}
	return (by/strideY)*constants.GridColumns + bx/strideX
}
