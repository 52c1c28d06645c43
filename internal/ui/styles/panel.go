package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered box style for a panel; the border is
// highlighted while the panel holds keyboard focus.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
