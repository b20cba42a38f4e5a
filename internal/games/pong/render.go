package pong

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// Net layout in world units.
const (
	netWidth   = 2
	netDash    = 15
	netSpacing = 30
)

// Render draws the court, paddles, ball and scores.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	w, h := g.Viewport()
	s := &g.state

	for y := 0.0; y < h; y += netSpacing {
		dst.FillRect(core.NewRect(w/2-netWidth/2, y, netWidth, netDash), core.ColorGray)
	}

	dst.FillRect(s.Left.Rect(), core.ColorBrightCyan)
	dst.FillRect(s.Right.Rect(), core.ColorBrightMagenta)
	dst.FillRect(s.Ball.Rect(), core.ColorBrightWhite)

	left := strconv.Itoa(s.ScoreLeft)
	right := strconv.Itoa(s.ScoreRight)
	top := dst.LineHeight()
	dst.DrawText(w/4-dst.TextWidth(left)/2, top, left, core.ColorBrightCyan)
	dst.DrawText(3*w/4-dst.TextWidth(right)/2, top, right, core.ColorBrightMagenta)

	switch {
	case s.GameOver:
		core.DrawCenteredMessage(dst, w, h,
			fmt.Sprintf("%s WINS", strings.ToUpper(s.Winner.String())),
			fmt.Sprintf("%d : %d", s.ScoreLeft, s.ScoreRight),
			"Press R to restart")
	case g.paused:
		core.DrawCenteredMessage(dst, w, h, "PAUSED", "Press P to resume")
	}
}
