package core

import "math"

// Canvas is the drawing surface a game renders into. Coordinates are world
// units; each host scales them onto its own surface (terminal cells or pixels).
type Canvas interface {
	// Clear erases the whole surface.
	Clear()
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
	// DrawText writes a single line of text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
	// TextWidth returns the width of text in world units.
	TextWidth(text string) float64
	// LineHeight returns the height of one text line in world units.
	LineHeight() float64
}

// FillGlyph is the rune ScreenCanvas uses for solid rectangles.
const FillGlyph = '█'

// ScreenCanvas draws world-space shapes into a terminal Screen, scaling the
// world so it fills the screen.
type ScreenCanvas struct {
	screen *Screen
	sx, sy float64 // cells per world unit
}

// NewScreenCanvas maps a worldW x worldH world onto the whole screen.
func NewScreenCanvas(s *Screen, worldW, worldH float64) *ScreenCanvas {
	c := &ScreenCanvas{screen: s}
	if worldW > 0 {
		c.sx = float64(s.Width()) / worldW
	}
	if worldH > 0 {
		c.sy = float64(s.Height()) / worldH
	}
	return c
}

// Screen returns the underlying cell buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Clear erases the screen.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// FillRect paints every cell the rectangle touches. Anything with a positive
// size covers at least one cell so small entities never vanish.
func (c *ScreenCanvas) FillRect(r Rect, col Color) {
	x0 := int(math.Floor(r.X * c.sx))
	y0 := int(math.Floor(r.Y * c.sy))
	x1 := int(math.Ceil(r.Right() * c.sx))
	y1 := int(math.Ceil(r.Bottom() * c.sy))
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetCell(x, y, FillGlyph, col)
		}
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (c *ScreenCanvas) DrawText(x, y float64, text string, col Color) {
	c.screen.DrawTextColor(int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)), text, col)
}

// TextWidth returns the world width of text, one cell per rune.
func (c *ScreenCanvas) TextWidth(text string) float64 {
	if c.sx == 0 {
		return 0
	}
	return float64(len([]rune(text))) / c.sx
}

// LineHeight returns the world height of one cell row.
func (c *ScreenCanvas) LineHeight() float64 {
	if c.sy == 0 {
		return 0
	}
	return 1 / c.sy
}

// DrawCenteredMessage draws a boxed block of text lines in the middle of a
// worldW x worldH view.
func DrawCenteredMessage(dst Canvas, worldW, worldH float64, lines ...string) {
	lineH := dst.LineHeight()
	var textW float64
	for _, l := range lines {
		textW = math.Max(textW, dst.TextWidth(l))
	}

	padX := dst.TextWidth("  ")
	boxW := textW + 2*padX
	boxH := float64(len(lines)+2) * lineH
	boxX := (worldW - boxW) / 2
	boxY := (worldH - boxH) / 2

	dst.FillRect(NewRect(boxX, boxY, boxW, boxH), ColorGray)
	dst.FillRect(NewRect(boxX+padX/2, boxY+lineH/2, boxW-padX, boxH-lineH), ColorBlack)

	for i, l := range lines {
		x := boxX + (boxW-dst.TextWidth(l))/2
		dst.DrawText(x, boxY+float64(i+1)*lineH, l, ColorBrightWhite)
	}
}
