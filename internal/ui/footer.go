package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// Icon returns the glyph shown before a flash of this type
func (t FlashType) Icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

// FlashMessage is a transient message that replaces the footer bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash is showing
type FlashTickMsg time.Time

// FlashTick returns a command that sends a flash tick after a delay
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the keybindings shown for the active screen
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the keybindings currently shown
func (f *Footer) Bindings() []KeyBinding {
	return f.bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes the flash message once it has expired.
// Returns true if a flash is still showing.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
	}
	return f.flashMessage != nil
}

func flashColor(t FlashType) lipgloss.Style {
	switch t {
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// View renders the footer
func (f *Footer) View() string {
	inner := max(f.width-2, 0)

	if f.flashMessage != nil {
		text := f.flashMessage.Type.Icon() + " " + f.flashMessage.Text
		if inner > 0 {
			text = ansi.Truncate(text, inner, "…")
		}
		return FooterStyle.Width(f.width).Render(flashColor(f.flashMessage.Type).Render(text))
	}

	var parts []string
	for _, b := range f.bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if inner > 0 && ansi.StringWidth(content) > inner {
		content = ansi.Truncate(content, inner, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}
