package auth

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zhubert/growmate/internal/errors"
	"github.com/zhubert/growmate/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

func newTestLocal() *Local {
	l := NewLocal()
	l.cost = bcrypt.MinCost
	return l
}

func TestNew(t *testing.T) {
	assert.IsType(t, Open{}, New(ModeOpen))
	assert.IsType(t, &Local{}, New(ModeLocal))
	assert.IsType(t, Open{}, New("something-else"))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	g := Open{}

	assert.NoError(t, g.Login(ctx, Credentials{Username: "fern"}))
	assert.NoError(t, g.Signup(ctx, Credentials{Username: "fern", Password: "x"}))

	err := g.Login(ctx, Credentials{Username: "  "})
	assert.True(t, errors.Is(err, errors.KindInvalid))
}

func TestLocal_SignupThenLogin(t *testing.T) {
	ctx := context.Background()
	l := newTestLocal()

	require.NoError(t, l.Signup(ctx, Credentials{Username: "Fern", Password: "photosynthesis"}))

	assert.NoError(t, l.Login(ctx, Credentials{Username: " fern ", Password: "photosynthesis"}))

	err := l.Login(ctx, Credentials{Username: "fern", Password: "wrong"})
	assert.True(t, errors.Is(err, errors.KindAuth))
	assert.Contains(t, err.Error(), "wrong password")
}

func TestLocal_Errors(t *testing.T) {
	ctx := context.Background()
	l := newTestLocal()
	require.NoError(t, l.Signup(ctx, Credentials{Username: "basil", Password: "pw"}))

	tests := []struct {
		name string
		call func() error
		kind errors.Kind
	}{
		{"unknown user", func() error { return l.Login(ctx, Credentials{Username: "mint", Password: "pw"}) }, errors.KindAuth},
		{"duplicate signup", func() error { return l.Signup(ctx, Credentials{Username: "BASIL", Password: "pw"}) }, errors.KindInvalid},
		{"missing password", func() error { return l.Signup(ctx, Credentials{Username: "thyme"}) }, errors.KindInvalid},
		{"missing username", func() error { return l.Login(ctx, Credentials{Password: "pw"}) }, errors.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.GetKind(err))
		})
	}
}

func TestLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestLocal().Signup(ctx, Credentials{Username: "sage", Password: "pw"})
	assert.ErrorIs(t, err, context.Canceled)
}
