package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Debug font metrics.
const (
	glyphWidth = 6
	lineHeight = 16
)

var background = color.RGBA{0, 0, 0, 255}

// rgba maps game colours to pixels. The values follow the xterm palette the
// terminal host uses, so both hosts look alike.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {229, 229, 229, 255},
	core.ColorRed:           {205, 0, 0, 255},
	core.ColorGreen:         {0, 205, 0, 255},
	core.ColorYellow:        {205, 205, 0, 255},
	core.ColorBlue:          {0, 0, 238, 255},
	core.ColorMagenta:       {205, 0, 205, 255},
	core.ColorCyan:          {0, 205, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {255, 0, 0, 255},
	core.ColorBrightGreen:   {0, 255, 0, 255},
	core.ColorBrightYellow:  {255, 255, 0, 255},
	core.ColorBrightBlue:    {92, 92, 255, 255},
	core.ColorBrightMagenta: {255, 0, 255, 255},
	core.ColorBrightCyan:    {0, 255, 255, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {138, 138, 138, 255},
	core.ColorBlack:         {0, 0, 0, 255},
}

// colorOf returns the pixel colour for c, falling back to the default.
func colorOf(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// canvas draws world-space shapes onto an Ebitengine image. The window's
// logical size equals the game viewport, so one world unit is one pixel.
type canvas struct {
	dst *ebiten.Image

	// text is a scratch line the debug font prints into before it is
	// tinted onto dst. The debug font only prints white.
	text *ebiten.Image
}

// Clear fills the whole image with the background.
func (c *canvas) Clear() {
	c.dst.Fill(background)
}

// FillRect paints a solid rectangle.
func (c *canvas) FillRect(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorOf(col), false)
}

// DrawText prints one line with its top-left corner at (x, y).
func (c *canvas) DrawText(x, y float64, text string, col core.Color) {
	if text == "" {
		return
	}

	w := int(c.TextWidth(text))
	if c.text == nil || c.text.Bounds().Dx() < w {
		c.text = ebiten.NewImage(w, lineHeight)
	}
	c.text.Clear()
	ebitenutil.DebugPrintAt(c.text, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(colorOf(col))
	c.dst.DrawImage(c.text.SubImage(image.Rect(0, 0, w, lineHeight)).(*ebiten.Image), op)
}

// TextWidth returns the pixel width of text in the debug font.
func (c *canvas) TextWidth(text string) float64 {
	return float64(len([]rune(text)) * glyphWidth)
}

// LineHeight returns the pixel height of one debug font line.
func (c *canvas) LineHeight() float64 {
	return lineHeight
}

var _ core.Canvas = (*canvas)(nil)
