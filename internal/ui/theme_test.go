package ui

import (
	"testing"

	"github.com/zhubert/growmate/internal/ui/modals"
)

func TestThemeNames_MatchBuiltins(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Fatalf("ThemeNames has %d entries, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	for _, name := range names {
		if _, ok := BuiltinThemes[name]; !ok {
			t.Errorf("ThemeNames lists unknown theme %q", name)
		}
	}
}

func TestBuiltinThemes_Complete(t *testing.T) {
	for name, theme := range BuiltinThemes {
		t.Run(string(name), func(t *testing.T) {
			fields := map[string]string{
				"Primary":   theme.Primary,
				"Secondary": theme.Secondary,
				"Bg":        theme.Bg,
				"Text":      theme.Text,
				"TextMuted": theme.TextMuted,
				"Error":     theme.Error,
				"Thirsty":   theme.Thirsty,
				"Border":    theme.Border,
			}
			for field, value := range fields {
				if len(value) != 7 || value[0] != '#' {
					t.Errorf("%s.%s = %q, want #RRGGBB", name, field, value)
				}
			}
		})
	}
}

func TestGetTheme_FallsBackToDefault(t *testing.T) {
	if got := GetTheme("no-such-theme"); got.Name != BuiltinThemes[DefaultTheme].Name {
		t.Errorf("Expected default theme, got %q", got.Name)
	}
	if got := GetTheme(ThemeNord); got.Name != "Nord" {
		t.Errorf("Expected Nord, got %q", got.Name)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(DefaultTheme)

	SetTheme(ThemeNord)
	if CurrentThemeName() != ThemeNord {
		t.Errorf("Expected current theme nord, got %q", CurrentThemeName())
	}
	if CurrentTheme().Name != "Nord" {
		t.Errorf("Expected Nord theme, got %q", CurrentTheme().Name)
	}
	if modals.ColorPrimary != ColorPrimary {
		t.Error("SetTheme should push colors to the modals package")
	}

	SetThemeByName("bogus")
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("Unknown theme should select default, got %q", CurrentThemeName())
	}
}

func TestIsThemeName(t *testing.T) {
	if !IsThemeName("garden") {
		t.Error("garden should be a theme")
	}
	if IsThemeName("dracula") {
		t.Error("dracula should not be a theme")
	}
}

func TestTheme_Defaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" {
		t.Error("BgSelected should default to Primary")
	}
	if th.GetBorderFocus() != "#111111" {
		t.Error("BorderFocus should default to Primary")
	}

	th.BgSelected = "#222222"
	th.BorderFocus = "#333333"
	if th.GetBgSelected() != "#222222" || th.GetBorderFocus() != "#333333" {
		t.Error("Explicit colors should win")
	}
}
