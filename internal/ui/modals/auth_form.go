package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/growmate/internal/auth"
)

const (
	UsernameCharLimit = 40
	PasswordCharLimit = 72 // bcrypt ignores bytes past 72
)

// =============================================================================
// AuthFormState - State for the login and signup screens
// =============================================================================

type AuthFormState struct {
	Signup bool

	username string
	password string
	confirm  string

	err  string
	busy bool
	form *huh.Form
}

func (*AuthFormState) modalState() {}

func (s *AuthFormState) Title() string {
	if s.Signup {
		return "Create your GrowMate account"
	}
	return "Welcome back to GrowMate"
}

func (s *AuthFormState) Help() string {
	if s.Signup {
		return "Tab: next field  Enter: sign up  Ctrl+T: log in instead"
	}
	return "Tab: next field  Enter: log in  Ctrl+T: sign up instead"
}

func (s *AuthFormState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	parts := []string{title, s.form.View()}
	switch {
	case s.busy:
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true).Render("Checking..."))
	case s.err != "":
		parts = append(parts, StatusErrorStyle.Render(s.err))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *AuthFormState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.busy {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SetError shows a message under the form and ends any pending request.
func (s *AuthFormState) SetError(err string) {
	s.err = err
	s.busy = false
}

// SetBusy marks a gateway request as in flight.
func (s *AuthFormState) SetBusy(busy bool) {
	s.busy = busy
	if busy {
		s.err = ""
	}
}

// Busy reports whether a gateway request is in flight.
func (s *AuthFormState) Busy() bool {
	return s.busy
}

// Credentials validates the form and returns what was entered.
func (s *AuthFormState) Credentials() (auth.Credentials, error) {
	creds := auth.Credentials{
		Username: strings.TrimSpace(s.username),
		Password: s.password,
	}
	if creds.Username == "" {
		return auth.Credentials{}, fmt.Errorf("username is required")
	}
	if s.Signup && s.password != s.confirm {
		return auth.Credentials{}, fmt.Errorf("passwords do not match")
	}
	return creds, nil
}

// NewAuthFormState creates the login form, or the signup form when signup is
// true. A username carried over from the other screen is kept.
func NewAuthFormState(signup bool, username string) *AuthFormState {
	s := &AuthFormState{Signup: signup, username: username}

	fields := []huh.Field{
		huh.NewInput().
			Title("Username").
			CharLimit(UsernameCharLimit).
			Value(&s.username),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			CharLimit(PasswordCharLimit).
			Value(&s.password),
	}
	if signup {
		fields = append(fields, huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			CharLimit(PasswordCharLimit).
			Value(&s.confirm))
	}

	s.form = newForm(ModalInputWidth, huh.NewGroup(fields...))
	return s
}

// Username returns the username typed so far.
func (s *AuthFormState) Username() string {
	return strings.TrimSpace(s.username)
}
