package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if footer.flashMessage != nil {
		t.Error("Expected no flash message initially")
	}
	if len(footer.Bindings()) == 0 {
		t.Error("Expected default bindings")
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetBindings([]KeyBinding{
		{Key: "enter", Desc: "open"},
		{Key: "a", Desc: "add plant"},
	})

	view := stripANSI(footer.View())
	if !strings.Contains(view, "enter: open") {
		t.Errorf("Expected binding in view, got %q", view)
	}
	if !strings.Contains(view, "a: add plant") {
		t.Errorf("Expected binding in view, got %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Error("Replaced bindings should not be shown")
	}
}

func TestFooter_TruncatesToWidth(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(24)
	footer.SetBindings([]KeyBinding{
		{Key: "enter", Desc: "open"},
		{Key: "a", Desc: "add plant"},
		{Key: "d", Desc: "delete plant"},
		{Key: "w", Desc: "water"},
	})

	view := stripANSI(footer.View())
	if strings.Contains(view, "water") {
		t.Errorf("Expected trailing bindings to be truncated, got %q", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("Expected ellipsis in truncated footer, got %q", view)
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test error message", FlashError)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Test error message" {
		t.Errorf("Expected text 'Test error message', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashError {
		t.Errorf("Expected type FlashError, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_SetFlashWithDuration(t *testing.T) {
	footer := NewFooter()
	customDuration := 10 * time.Second

	footer.SetFlashWithDuration("Custom duration", FlashInfo, customDuration)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Duration != customDuration {
		t.Errorf("Expected duration %v, got %v", customDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test message", FlashInfo)
	if !footer.HasFlash() {
		t.Error("Expected HasFlash() to return true")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	msg := &FlashMessage{
		Text:      "fresh",
		Type:      FlashInfo,
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	}
	if msg.IsExpired() {
		t.Error("Fresh message should not be expired")
	}

	expiredMsg := &FlashMessage{
		Text:      "old",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	}
	if !expiredMsg.IsExpired() {
		t.Error("Old message should be expired")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Not expired", FlashInfo)
	if !footer.ClearIfExpired() {
		t.Error("ClearIfExpired should report a live flash")
	}
	if !footer.HasFlash() {
		t.Error("Flash should still be present")
	}

	footer.flashMessage = &FlashMessage{
		Text:      "Expired",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  time.Second,
	}
	if footer.ClearIfExpired() {
		t.Error("ClearIfExpired should report no flash after expiry")
	}
	if footer.HasFlash() {
		t.Error("Flash should be cleared")
	}
}

func TestFooter_View_WithFlash(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)

	viewWithoutFlash := footer.View()
	if strings.Contains(viewWithoutFlash, "Test error") {
		t.Error("Should not contain flash message text when no flash is set")
	}

	footer.SetFlash("Test error message", FlashError)
	viewWithFlash := stripANSI(footer.View())

	if !strings.Contains(viewWithFlash, "Test error message") {
		t.Error("Flash message should be visible in view")
	}
	if !strings.Contains(viewWithFlash, "✕") {
		t.Error("Error flash should contain error icon")
	}
	if strings.Contains(viewWithFlash, "quit") {
		t.Error("Flash should replace the keybindings")
	}
}

func TestFooter_FlashTypes(t *testing.T) {
	tests := []struct {
		name         string
		flashType    FlashType
		expectedIcon string
	}{
		{"Error", FlashError, "✕"},
		{"Warning", FlashWarning, "⚠"},
		{"Info", FlashInfo, "ℹ"},
		{"Success", FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(80)
			footer.SetFlash("Test message", tt.flashType)

			view := footer.View()
			if !strings.Contains(view, tt.expectedIcon) {
				t.Errorf("Expected %s flash to contain icon %q", tt.name, tt.expectedIcon)
			}
		})
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}
