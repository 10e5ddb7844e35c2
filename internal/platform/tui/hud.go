package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// Rows taken by the HUD bar and the help footer around the playfield.
const (
	hudHeight    = 1
	footerHeight = 1
	chromeHeight = hudHeight + footerHeight
)

var (
	hudBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))
	hudTitleStyle = hudBarStyle.Bold(true).Foreground(lipgloss.Color("10"))
	hudLabelStyle = hudBarStyle.Foreground(lipgloss.Color("245"))
	hudValueStyle = hudBarStyle.Bold(true)
	hudSepStyle   = hudBarStyle.Foreground(lipgloss.Color("240"))
	hudHitStyle   = hudBarStyle.Foreground(lipgloss.Color("9"))
	hudFreeStyle  = hudBarStyle.Foreground(lipgloss.Color("240"))
	pausedBadge   = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))
	gameOverBadge = lipgloss.NewStyle().Bold(true).Padding(0, 1).
			Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15"))
)

// renderHUD draws the one-line status bar: score, level, cars passed and
// the crash meter.
func renderHUD(title string, s core.GameState, width int) string {
	sep := hudSepStyle.Render(" │ ")
	field := func(label string, value any) string {
		return hudLabelStyle.Render(label+" ") + hudValueStyle.Render(fmt.Sprint(value))
	}

	parts := []string{
		hudTitleStyle.Render(" " + title),
		field("Score", s.Score),
		field("Level", s.Level),
		field("Passed", s.CarsPassed),
		hudLabelStyle.Render("Crashes ") + crashMeter(s.Collisions, s.MaxHits),
	}
	bar := strings.Join(parts, sep)

	switch {
	case s.GameOver:
		bar += hudBarStyle.Render(" ") + gameOverBadge.Render("GAME OVER")
	case s.Paused:
		bar += hudBarStyle.Render(" ") + pausedBadge.Render("PAUSED")
	}

	return hudBarStyle.Inline(true).Width(width).MaxWidth(width).Render(bar)
}

// crashMeter shows used strikes as filled dots, e.g. ●●○○○.
func crashMeter(hits, limit int) string {
	hits = core.Clamp(hits, 0, max(limit, 0))
	free := max(limit-hits, 0)
	return hudHitStyle.Render(strings.Repeat("●", hits)) +
		hudFreeStyle.Render(strings.Repeat("○", free))
}
