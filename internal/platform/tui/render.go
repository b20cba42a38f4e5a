package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
}

// Palette holds the lipgloss styles for every core.Color, bound to one
// renderer. SSH sessions each get their own so colour detection follows the
// client's terminal rather than the server's.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	help   lipgloss.Style
	title  lipgloss.Style
	cursor lipgloss.Style
	dim    lipgloss.Style
}

// NewPalette builds the styles for a renderer. A nil renderer uses the
// default one bound to stdout.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	p := &Palette{
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)+1),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 2),
		cursor: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
	p.styles[core.ColorDefault] = r.NewStyle()
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// Style returns the style for a color, falling back to the default style.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderFrame renders the game screen with a help line underneath.
func (p *Palette) RenderFrame(s *core.Screen, helpLine string) string {
	if helpLine == "" {
		return p.RenderScreen(s)
	}
	return p.RenderScreen(s) + "\n" + p.help.Render(helpLine)
}
