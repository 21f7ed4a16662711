// Package auth provides the login/signup gateways the app consults before
// marking the session as logged in. The state controller only ever sees a
// successful outcome; failures stay here and are reported to the user.
package auth

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/zhubert/growmate/internal/errors"
	"github.com/zhubert/growmate/internal/logger"
)

// Mode names a gateway implementation in configuration.
const (
	ModeOpen  = "open"
	ModeLocal = "local"
)

// Credentials are what the login and signup screens collect.
type Credentials struct {
	Username string
	Password string
}

// Gateway authenticates a user. A nil error means success.
type Gateway interface {
	Login(ctx context.Context, creds Credentials) error
	Signup(ctx context.Context, creds Credentials) error
}

// New returns the gateway for mode. Unknown modes fall back to ModeOpen.
func New(mode string) Gateway {
	switch mode {
	case ModeLocal:
		return NewLocal()
	default:
		return Open{}
	}
}

// Open accepts any credentials with a non-blank username.
type Open struct{}

func (Open) Login(ctx context.Context, creds Credentials) error {
	return requireUsername("auth.Login", creds)
}

func (Open) Signup(ctx context.Context, creds Credentials) error {
	return requireUsername("auth.Signup", creds)
}

// Local keeps bcrypt-hashed accounts in memory for the life of the process.
type Local struct {
	mu       sync.Mutex
	accounts map[string][]byte
	cost     int
}

// NewLocal returns an empty account store.
func NewLocal() *Local {
	return &Local{accounts: make(map[string][]byte), cost: bcrypt.DefaultCost}
}

// Signup registers a new account.
func (l *Local) Signup(ctx context.Context, creds Credentials) error {
	if err := requireUsername("auth.Signup", creds); err != nil {
		return err
	}
	if creds.Password == "" {
		return errors.E(errors.Op("auth.Signup"), errors.KindInvalid, "password is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name := normalize(creds.Username)
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), l.cost)
	if err != nil {
		return errors.E(errors.Op("auth.Signup"), errors.KindAuth, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.accounts[name]; exists {
		return errors.E(errors.Op("auth.Signup"), errors.KindInvalid, "username "+name+" is taken")
	}
	l.accounts[name] = hash
	logger.WithComponent("auth").Info("account created", "username", name)
	return nil
}

// Login verifies the password for an existing account.
func (l *Local) Login(ctx context.Context, creds Credentials) error {
	if err := requireUsername("auth.Login", creds); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name := normalize(creds.Username)
	l.mu.Lock()
	hash, ok := l.accounts[name]
	l.mu.Unlock()
	if !ok {
		return errors.AuthFailed(name, "unknown user")
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		return errors.AuthFailed(name, "wrong password")
	}
	return nil
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func requireUsername(op string, creds Credentials) error {
	if strings.TrimSpace(creds.Username) == "" {
		return errors.E(errors.Op(op), errors.KindInvalid, "username is required")
	}
	return nil
}
