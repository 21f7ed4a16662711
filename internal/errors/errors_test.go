package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindAuth, "authentication error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextOnlyBecomesErr(t *testing.T) {
	err := E(Op("plant.Validate"), KindInvalid, "name is required")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Context != "" {
		t.Errorf("expected context to move into Err, got %q", e.Context)
	}
	if e.Err.Error() != "name is required" {
		t.Errorf("Err = %q, want %q", e.Err.Error(), "name is required")
	}
	if e.Kind != KindInvalid {
		t.Errorf("Kind = %v, want %v", e.Kind, KindInvalid)
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	base := SeedLoadFailed("/tmp/seed.yaml", errors.New("no such file"))
	wrapped := fmt.Errorf("startup: %w", base)

	if !Is(wrapped, KindIO) {
		t.Error("expected wrapped seed error to be KindIO")
	}
	if Is(wrapped, KindConfig) {
		t.Error("did not expect wrapped seed error to be KindConfig")
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should report KindUnknown")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		contains string
	}{
		{"config load", ConfigLoadFailed("/a/config.yaml", errors.New("x")), KindConfig, "/a/config.yaml"},
		{"config save", ConfigSaveFailed("/a/config.yaml", errors.New("x")), KindConfig, "failed to save"},
		{"config invalid", ConfigInvalid("bad theme"), KindInvalid, "bad theme"},
		{"plant invalid", PlantInvalid("age must not be negative"), KindInvalid, "age must not be negative"},
		{"auth", AuthFailed("fern", "wrong password"), KindAuth, "fern: wrong password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GetKind(tt.err) != tt.kind {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
