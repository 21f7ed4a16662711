package ui

import (
	"sync"

	"github.com/zhubert/growmate/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	NavBarHeight  int
	ContentHeight int
	ContentWidth  int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			NavBarHeight: NavBarHeight,
		}
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.NavBarHeight = NavBarHeight

	// Content area is everything between the header and the nav bar + footer
	v.ContentHeight = height - v.HeaderHeight - v.NavBarHeight - v.FooterHeight

	v.ContentWidth = width

	logger.WithComponent("ui").Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"contentWidth", v.ContentWidth,
	)
}

// Size returns the terminal size under the lock.
func (v *ViewContext) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth, v.TerminalHeight
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
