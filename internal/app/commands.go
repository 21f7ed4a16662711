package app

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/growmate/internal/auth"
	"github.com/zhubert/growmate/internal/clipboard"
	"github.com/zhubert/growmate/internal/config"
	gmerrors "github.com/zhubert/growmate/internal/errors"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/notification"
	"github.com/zhubert/growmate/internal/plant"
)

// authenticate runs a login or signup request off the event loop.
func authenticate(gateway auth.Gateway, signup bool, creds auth.Credentials, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		log := logger.WithComponent("auth")
		var err error
		if signup {
			err = gateway.Signup(ctx, creds)
		} else {
			err = gateway.Login(ctx, creds)
		}
		if err != nil {
			log.Info("authentication rejected", "username", creds.Username, "signup", signup, "error", err)
		} else {
			log.Info("authentication accepted", "username", creds.Username, "signup", signup)
		}
		return AuthResultMsg{Signup: signup, Username: creds.Username, Err: err}
	}
}

// remindThirsty sends a desktop notification listing plants that need water.
func remindThirsty(plants []plant.Plant, now time.Time, thresholdDays int) tea.Cmd {
	return func() tea.Msg {
		sent, err := notification.RemindThirsty(plants, now, thresholdDays)
		return ReminderResultMsg{Sent: sent, Err: err}
	}
}

// copySummary writes a plant's summary to the system clipboard.
func copySummary(p plant.Plant) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteText(p.Summary())
		if err != nil {
			logger.WithPlant(p.ID).Warn("copy failed", "error", err)
		}
		return ClipboardResultMsg{PlantName: p.Name, Err: err}
	}
}

// saveConfig persists settings after a change made from the UI.
func saveConfig(cfg *config.Config, setting string) tea.Cmd {
	return func() tea.Msg {
		if cfg.Path() == "" {
			return ConfigSavedMsg{Setting: setting}
		}
		return ConfigSavedMsg{Setting: setting, Err: cfg.Save()}
	}
}

// userMessage renders an error for the footer without the operation prefix.
func userMessage(err error) string {
	var e *gmerrors.Error
	if errors.As(err, &e) && e.Err != nil {
		if e.Context != "" {
			return e.Context + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return err.Error()
}
