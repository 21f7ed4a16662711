// Package ui provides the visual components of the GrowMate TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Content: plant list, plant detail, plant form,    │
//	│   encyclopaedia, reels or account page              │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Nav bar (2 lines)                                   │
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// While logged out the content area, nav bar and header right side are
// replaced by the login or signup form.
//
// ViewContext holds the terminal size and derived content size; every size
// calculation goes through it.
//
// Modal state types (delete confirmation, plant form, auth form, help) live
// in the modals subpackage and are re-exported here as aliases.
//
// Styles are regenerated from the active Theme by SetTheme.
package ui
