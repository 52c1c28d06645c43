package tracklist

// cursor tracks the selected row and scroll offset of the list.
// List length and viewport height are passed in since both change with
// search results and terminal size.
type cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above/below pos
}

func (c *cursor) move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *cursor) jumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

func (c *cursor) reset() {
	c.pos = 0
	c.offset = 0
}

func (c *cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	// Margin cannot exceed half the viewport or scrolling oscillates.
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// clampToBounds keeps pos valid after the list shrank.
func (c *cursor) clampToBounds(listLen, height int) {
	if listLen == 0 {
		c.reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c cursor) visibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// handleKey applies list navigation keys and reports whether the key was one.
// Keys: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (c *cursor) handleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.move(1, listLen, height)
	case "k", "up":
		c.move(-1, listLen, height)
	case "g", "home":
		c.reset()
	case "G", "end":
		c.jumpEnd(listLen, height)
	case "ctrl+d", "pgdown":
		c.move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
