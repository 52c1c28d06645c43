// Package ui provides layout constants and the size/focus state shared by TUI components.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel header and its separator.
	HeaderHeight = 2

	// PanelOverhead is border + header; list height = panel height - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight

	// SearchHeight is the bordered single-line search box.
	SearchHeight = 3

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)

// Base tracks a component's size and focus. Embed it in component models.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content after overhead, never negative.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
