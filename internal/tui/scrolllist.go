package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ScrollItem is a single entry in a ScrollList.
type ScrollItem interface {
	// ID returns the unique identifier for this item.
	ID() string
	// Render returns the item at the given width.
	Render(width int, selected bool) string
}

// ScrollList is a scrollable list that only renders the items in view.
// It keeps an item offset plus a line offset into that item, and an
// optional selection cursor that the view follows.
type ScrollList struct {
	items      []ScrollItem
	heights    []int // Cached rendered heights, 0 = unknown
	offsetIdx  int   // Index of the first visible item
	offsetLine int   // Lines skipped from the first visible item
	width      int
	height     int
	gap        int  // Blank lines between items
	selectable bool // Whether the cursor is shown and followed
	selected   int  // Selected item index (-1 = none)
}

// NewScrollList creates a new ScrollList with the given size.
func NewScrollList(width, height int) *ScrollList {
	return &ScrollList{
		width:    width,
		height:   height,
		selected: -1,
	}
}

// SetItems replaces all items. The selection is kept when still in range.
func (s *ScrollList) SetItems(items []ScrollItem) {
	s.items = items
	s.heights = make([]int, len(items))
	if s.selectable {
		switch {
		case len(items) == 0:
			s.selected = -1
		case s.selected < 0:
			s.selected = 0
		case s.selected >= len(items):
			s.selected = len(items) - 1
		}
	}
	s.clampOffset()
	s.ensureVisible()
}

// Items returns the items in the list.
func (s *ScrollList) Items() []ScrollItem {
	return s.items
}

// SetSize updates the viewport size. Cached heights are dropped when the
// width changes.
func (s *ScrollList) SetSize(width, height int) {
	if width != s.width {
		s.heights = make([]int, len(s.items))
	}
	s.width = width
	s.height = height
	s.clampOffset()
	s.ensureVisible()
}

// SetGap sets the number of blank lines between items.
func (s *ScrollList) SetGap(gap int) {
	s.gap = gap
}

// SetSelectable turns the selection cursor on or off.
func (s *ScrollList) SetSelectable(selectable bool) {
	s.selectable = selectable
	if !selectable {
		s.selected = -1
	} else if s.selected < 0 && len(s.items) > 0 {
		s.selected = 0
	}
}

// Selected returns the selected item, or nil.
func (s *ScrollList) Selected() ScrollItem {
	if s.selected < 0 || s.selected >= len(s.items) {
		return nil
	}
	return s.items[s.selected]
}

// SelectedIdx returns the selected index (-1 if none).
func (s *ScrollList) SelectedIdx() int {
	return s.selected
}

// SetSelected moves the cursor, clamped to the item range.
func (s *ScrollList) SetSelected(idx int) {
	if !s.selectable || len(s.items) == 0 {
		return
	}
	s.selected = max(0, min(idx, len(s.items)-1))
	s.ensureVisible()
}

// itemHeight returns the rendered height of item i including its gap.
func (s *ScrollList) itemHeight(i int) int {
	if s.heights[i] == 0 {
		rendered := s.items[i].Render(s.width, i == s.selected)
		s.heights[i] = strings.Count(rendered, "\n") + 1
	}
	h := s.heights[i]
	if i < len(s.items)-1 {
		h += s.gap
	}
	return h
}

// View returns the visible window of the list.
func (s *ScrollList) View() string {
	if len(s.items) == 0 || s.height <= 0 {
		return ""
	}

	var lines []string
	for i := s.offsetIdx; i < len(s.items) && len(lines) < s.height; i++ {
		rendered := s.items[i].Render(s.width, s.selectable && i == s.selected)
		itemLines := strings.Split(rendered, "\n")
		s.heights[i] = len(itemLines)
		if i < len(s.items)-1 {
			for g := 0; g < s.gap; g++ {
				itemLines = append(itemLines, "")
			}
		}
		if i == s.offsetIdx && s.offsetLine > 0 {
			if s.offsetLine >= len(itemLines) {
				continue
			}
			itemLines = itemLines[s.offsetLine:]
		}
		lines = append(lines, itemLines...)
	}
	if len(lines) > s.height {
		lines = lines[:s.height]
	}
	return strings.Join(lines, "\n")
}

// ScrollBy scrolls by the given number of lines. Positive scrolls down.
func (s *ScrollList) ScrollBy(lines int) {
	if len(s.items) == 0 || lines == 0 {
		return
	}
	target := s.currentOffsetInLines() + lines
	maxOffset := s.TotalLineCount() - s.height
	if target > maxOffset {
		target = maxOffset
	}
	if target < 0 {
		target = 0
	}
	s.gotoLine(target)
}

// GotoTop scrolls to the top of the list.
func (s *ScrollList) GotoTop() {
	s.offsetIdx = 0
	s.offsetLine = 0
}

// GotoBottom scrolls so the last line is at the bottom of the view.
func (s *ScrollList) GotoBottom() {
	target := s.TotalLineCount() - s.height
	if target < 0 {
		target = 0
	}
	s.gotoLine(target)
}

// AtBottom returns true if the last line is in view.
func (s *ScrollList) AtBottom() bool {
	return s.currentOffsetInLines()+s.height >= s.TotalLineCount()
}

// TotalLineCount returns the total number of lines across all items.
func (s *ScrollList) TotalLineCount() int {
	total := 0
	for i := range s.items {
		total += s.itemHeight(i)
	}
	return total
}

// ScrollPercent returns the scroll position as a fraction (0.0 to 1.0).
func (s *ScrollList) ScrollPercent() float64 {
	maxOffset := s.TotalLineCount() - s.height
	if maxOffset <= 0 {
		return 1.0
	}
	pct := float64(s.currentOffsetInLines()) / float64(maxOffset)
	return min(1.0, max(0.0, pct))
}

// Update handles scrolling and cursor keys.
func (s *ScrollList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if s.selectable {
			s.SetSelected(s.selected - 1)
		} else {
			s.ScrollBy(-1)
		}
	case "down", "j":
		if s.selectable {
			s.SetSelected(s.selected + 1)
		} else {
			s.ScrollBy(1)
		}
	case "pgup":
		s.ScrollBy(-s.height)
	case "pgdown":
		s.ScrollBy(s.height)
	case "home", "g":
		s.GotoTop()
		s.SetSelected(0)
	case "end", "G":
		s.GotoBottom()
		s.SetSelected(len(s.items) - 1)
	}
	return nil
}

// ensureVisible scrolls so the selected item is fully in view when it fits.
func (s *ScrollList) ensureVisible() {
	if !s.selectable || s.selected < 0 || s.selected >= len(s.items) || s.height <= 0 {
		return
	}
	start := 0
	for i := 0; i < s.selected; i++ {
		start += s.itemHeight(i)
	}
	end := start + s.itemHeight(s.selected)
	offset := s.currentOffsetInLines()
	switch {
	case start < offset:
		s.gotoLine(start)
	case end > offset+s.height:
		s.gotoLine(max(start, end-s.height))
	}
}

// gotoLine positions the view so the given absolute line is at the top.
func (s *ScrollList) gotoLine(line int) {
	s.offsetIdx = 0
	s.offsetLine = 0
	for i := range s.items {
		h := s.itemHeight(i)
		if line < h {
			s.offsetIdx = i
			s.offsetLine = line
			return
		}
		line -= h
	}
	if len(s.items) > 0 {
		s.offsetIdx = len(s.items) - 1
	}
}

// currentOffsetInLines returns the current scroll offset in lines.
func (s *ScrollList) currentOffsetInLines() int {
	offset := 0
	for i := 0; i < s.offsetIdx && i < len(s.items); i++ {
		offset += s.itemHeight(i)
	}
	return offset + s.offsetLine
}

// clampOffset ensures the offset is within valid bounds.
func (s *ScrollList) clampOffset() {
	if len(s.items) == 0 {
		s.offsetIdx = 0
		s.offsetLine = 0
		return
	}
	if s.offsetIdx >= len(s.items) {
		s.offsetIdx = len(s.items) - 1
		s.offsetLine = 0
	}
	if s.offsetIdx < 0 {
		s.offsetIdx = 0
	}
	if h := s.itemHeight(s.offsetIdx); s.offsetLine >= h {
		s.offsetLine = max(0, h-1)
	}
	if s.offsetLine < 0 {
		s.offsetLine = 0
	}
}
