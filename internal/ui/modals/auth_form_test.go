package modals

import (
	"strings"
	"testing"
)

func TestAuthFormState_LoginCredentials(t *testing.T) {
	s := NewAuthFormState(false, "")
	s.username = "  fern  "
	s.password = "secret"

	creds, err := s.Credentials()
	if err != nil {
		t.Fatalf("Credentials() failed: %v", err)
	}
	if creds.Username != "fern" || creds.Password != "secret" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestAuthFormState_RequiresUsername(t *testing.T) {
	s := NewAuthFormState(false, "")
	if _, err := s.Credentials(); err == nil {
		t.Error("expected error for blank username")
	}
}

func TestAuthFormState_SignupPasswordsMustMatch(t *testing.T) {
	s := NewAuthFormState(true, "fern")
	s.password = "one"
	s.confirm = "two"

	if _, err := s.Credentials(); err == nil {
		t.Fatal("expected mismatch error")
	}

	s.confirm = "one"
	if _, err := s.Credentials(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthFormState_KeepsUsernameAcrossScreens(t *testing.T) {
	s := NewAuthFormState(true, "fern")
	if s.Username() != "fern" {
		t.Errorf("expected carried over username, got %q", s.Username())
	}
}

func TestAuthFormState_BusyAndError(t *testing.T) {
	s := NewAuthFormState(false, "fern")

	s.SetBusy(true)
	if !s.Busy() || !strings.Contains(s.Render(), "Checking") {
		t.Error("busy form should show progress")
	}
	if _, cmd := s.Update(keyPress("x")); cmd != nil {
		t.Error("busy form should ignore input")
	}

	s.SetError("invalid username or password")
	if s.Busy() {
		t.Error("error should clear busy")
	}
	if !strings.Contains(s.Render(), "invalid username or password") {
		t.Error("render should include the error")
	}
}

func TestAuthFormState_TitleAndHelp(t *testing.T) {
	login := NewAuthFormState(false, "")
	signup := NewAuthFormState(true, "")

	if login.Title() == signup.Title() {
		t.Error("login and signup titles should differ")
	}
	if !strings.Contains(login.Help(), "sign up") || !strings.Contains(signup.Help(), "log in") {
		t.Error("help should point at the other screen")
	}
}
