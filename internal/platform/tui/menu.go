package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-traffic/internal/config"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).MarginBottom(1)
	menuItemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	menuActive     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuKeyMap defines the key bindings of the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	title    string
	presets  []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected config.DifficultyPreset
	quitting bool
}

// NewMenuModel creates a difficulty menu with the cursor on "normal".
func NewMenuModel(title string, width, height int) MenuModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}
	return MenuModel{
		title:   title,
		presets: presets,
		cursor:  cursor,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = m.presets[m.cursor]
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu centered in the terminal.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render(m.title))
	b.WriteString("\n")
	for i, p := range m.presets {
		label := fmt.Sprintf("%-8s", p)
		line := "  " + label + " " + menuDescStyle.Render(p.Description())
		if i == m.cursor {
			line = menuActive.Render("> "+label) + " " + menuDescStyle.Render(p.Description())
		}
		b.WriteString(menuItemStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m MenuModel) Selected() config.DifficultyPreset {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Width  int // Terminal size at exit
	Height int
	Quit   bool
}

// RunMenu shows the difficulty menu and returns the choice.
func RunMenu(title string, width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(title, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height, Quit: true}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.selected == "" {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}
	return MenuResult{Preset: m.selected, Width: m.width, Height: m.height}, nil
}
