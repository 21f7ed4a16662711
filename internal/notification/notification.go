// Package notification sends desktop notifications through beeep, which
// picks the native mechanism on macOS, Linux and Windows.
package notification

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/plant"
)

// Title is used for every notification GrowMate sends.
const Title = "GrowMate"

type notifyFunc func(title, message string, icon any) error

var (
	mu       sync.Mutex
	notifier notifyFunc = beeep.Notify
)

// SetNotifier replaces the notification backend. Tests use it to avoid
// sending real notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	fn := notifier
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep use the platform default
	if err := fn(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// ThirstyPlants returns the names of plants that have gone at least
// thresholdDays without water.
func ThirstyPlants(plants []plant.Plant, now time.Time, thresholdDays int) []string {
	var names []string
	for _, p := range plants {
		if p.NeedsWater(now, thresholdDays) {
			names = append(names, p.Name)
		}
	}
	return names
}

// ThirstyMessage formats the reminder body for the given plant names.
func ThirstyMessage(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0] + " needs watering"
	default:
		return fmt.Sprintf("%d plants need watering: %s", len(names), strings.Join(names, ", "))
	}
}

// RemindThirsty notifies about thirsty plants. It reports whether a
// notification was sent.
func RemindThirsty(plants []plant.Plant, now time.Time, thresholdDays int) (bool, error) {
	names := ThirstyPlants(plants, now, thresholdDays)
	if len(names) == 0 {
		return false, nil
	}
	if err := Send(Title, ThirstyMessage(names)); err != nil {
		return false, err
	}
	return true, nil
}
