package state

// PanelState is the expand/collapse state of one titled panel.
type PanelState struct {
	Title string
	Icon  string
	open  Switch
}

// NewPanel creates a panel, open when defaultOpen is set.
func NewPanel(title, icon string, defaultOpen bool) PanelState {
	return PanelState{Title: title, Icon: icon, open: NewSwitch(defaultOpen)}
}

// IsOpen reports whether nested content should be laid out.
func (p PanelState) IsOpen() bool {
	return p.open.On()
}

// Toggle flips the panel between open and closed.
func (p PanelState) Toggle() PanelState {
	p.open = p.open.Toggle()
	return p
}

// Equal compares title, icon and position.
func (p PanelState) Equal(other PanelState) bool {
	return p.Title == other.Title && p.Icon == other.Icon && p.open.Equal(other.open)
}
