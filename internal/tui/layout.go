package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// CompactWidthBreakpoint is the width below which cards stack in one column
	CompactWidthBreakpoint = 100
	// NavbarHeight is the navbar row plus its rule
	NavbarHeight = 2
	// FooterHeight is the copyright row plus the hint row
	FooterHeight = 2
	// ContentPadding is the horizontal margin around page content
	ContentPadding = 2
	// MaxContentWidth caps the page width on wide terminals
	MaxContentWidth = 140
)

// LayoutMode represents the layout mode based on terminal width
type LayoutMode int

const (
	// LayoutDesktop shows event cards in two columns
	LayoutDesktop LayoutMode = iota
	// LayoutCompact shows one card per row
	LayoutCompact
)

// Layout defines the rectangular regions of the app chrome.
type Layout struct {
	Mode    LayoutMode
	Area    uv.Rectangle
	Navbar  uv.Rectangle
	Content uv.Rectangle
	Footer  uv.Rectangle
}

// IsCompact returns true if the layout is in compact mode
func (l Layout) IsCompact() bool {
	return l.Mode == LayoutCompact
}

// Columns returns how many event cards fit side by side.
func (l Layout) Columns() int {
	if l.IsCompact() {
		return 1
	}
	return 2
}

// CalculateLayout computes the layout rectangles for a terminal size.
func CalculateLayout(width, height int) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	mode := LayoutDesktop
	if width < CompactWidthBreakpoint {
		mode = LayoutCompact
	}

	area := uv.Rectangle{Max: uv.Position{X: width, Y: height}}

	navHeight := min(NavbarHeight, height)
	navRect, rest := uv.SplitVertical(area, uv.Fixed(navHeight))

	footHeight := min(FooterHeight, rest.Dy())
	contentRect, footerRect := uv.SplitVertical(rest, uv.Fixed(rest.Dy()-footHeight))

	// Pad and center the content column
	contentWidth := contentRect.Dx() - 2*ContentPadding
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}
	if contentWidth < 0 {
		contentWidth = 0
	}
	left := contentRect.Min.X + (contentRect.Dx()-contentWidth)/2
	contentRect = uv.Rectangle{
		Min: uv.Position{X: left, Y: contentRect.Min.Y},
		Max: uv.Position{X: left + contentWidth, Y: contentRect.Max.Y},
	}

	return Layout{
		Mode:    mode,
		Area:    area,
		Navbar:  navRect,
		Content: contentRect,
		Footer:  footerRect,
	}
}
