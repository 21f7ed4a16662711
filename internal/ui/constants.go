// Package ui provides constants for layout calculations.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// NavBarHeight is the height of the bottom navigation bar (content + top border)
	NavBarHeight = 2

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// DefaultWrapWidth is the default width for text wrapping when the viewport width is unknown
	DefaultWrapWidth = 80
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by forms with many fields
	ModalWidthWide = 84

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of help rows shown before scrolling
	HelpModalMaxVisible = 18
)
