package traffic

// MenuItem is an entry of the pause menu.
type MenuItem int

const (
	MenuResume MenuItem = iota
	MenuRestart
)

var menuLabels = [...]string{
	MenuResume:  "Resume",
	MenuRestart: "Restart",
}

// String returns the label shown in the menu.
func (m MenuItem) String() string {
	if int(m) < 0 || int(m) >= len(menuLabels) {
		return ""
	}
	return menuLabels[m]
}

// PauseMenu tracks the highlighted pause menu entry.
type PauseMenu struct {
	cursor MenuItem
}

// Reset highlights the first entry.
func (p *PauseMenu) Reset() {
	p.cursor = MenuResume
}

// Up moves the highlight up, stopping at the first entry.
func (p *PauseMenu) Up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// Down moves the highlight down, stopping at the last entry.
func (p *PauseMenu) Down() {
	if int(p.cursor) < len(menuLabels)-1 {
		p.cursor++
	}
}

// Selected returns the highlighted entry.
func (p *PauseMenu) Selected() MenuItem {
	return p.cursor
}
