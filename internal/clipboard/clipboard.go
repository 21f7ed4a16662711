// Package clipboard copies plant summaries to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/growmate/internal/logger"
)

// backend is the subset of golang.design/x/clipboard used here.
type backend interface {
	Init() error
	Write(data []byte)
	Read() []byte
}

type systemBackend struct{}

func (systemBackend) Init() error       { return clipboard.Init() }
func (systemBackend) Write(data []byte) { clipboard.Write(clipboard.FmtText, data) }
func (systemBackend) Read() []byte      { return clipboard.Read(clipboard.FmtText) }

var (
	mu          sync.Mutex
	impl        backend = systemBackend{}
	initialized bool
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := impl.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	impl.Write([]byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return "", err
	}
	return string(impl.Read()), nil
}
