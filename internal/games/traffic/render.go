package traffic

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Visual characters for rendering
const (
	CarChar    = '█'
	PlayerChar = '█'
	LaneChar   = '╎'
	EdgeChar   = '│'
)

// Render draws the playfield into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		minW, minH := g.MinSize()
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minW, minH), core.ColorGray)
		return
	}

	g.drawRoad(dst)

	for _, c := range g.cars.Cars() {
		dst.DrawRect(c.Body.Rect(), CarChar, core.ColorBrightRed)
	}
	dst.DrawRect(g.player.Rect(), PlayerChar, core.ColorBrightGreen)

	switch {
	case g.gameOver:
		g.drawPanel(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Final Score: %d", g.score),
			fmt.Sprintf("Level: %d", g.level),
			"",
			"R/Enter: restart  Q: quit",
		)
	case g.paused:
		var lines []string
		for item := MenuResume; item <= MenuRestart; item++ {
			cursor := "  "
			if g.menu.Selected() == item {
				cursor = "> "
			}
			lines = append(lines, cursor+item.String())
		}
		lines = append(lines, "", "P: resume  R: restart")
		g.drawPanel(dst, core.ColorBrightYellow, "PAUSED", lines...)
	}
}

// drawRoad draws the lane dividers. Dashes scroll with the traffic.
func (g *Game) drawRoad(dst *core.Screen) {
	lanes := g.cars.Lanes()
	offset := int(math.Floor(g.scroll))
	for i := 1; i < lanes; i++ {
		x := int(math.Round(float64(i) * g.fieldW() / float64(lanes)))
		for y := 0; y < dst.Height(); y++ {
			if ((y-offset)%4+4)%4 < 2 {
				dst.SetColored(x, y, LaneChar, core.ColorGray)
			}
		}
	}
	dst.DrawVLine(0, 0, dst.Height(), EdgeChar, core.ColorWhite)
	dst.DrawVLine(dst.Width()-1, 0, dst.Height(), EdgeChar, core.ColorWhite)
}

// drawPanel draws a boxed message in the center of the screen.
func (g *Game) drawPanel(dst *core.Screen, color core.Color, title string, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+3+i, l)
	}
}
