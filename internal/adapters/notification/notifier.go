// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/gitcoach/internal/config"
)

// Notifier handles desktop notifications. Slow commands (a clone or a
// push over a home connection can take a while) get a completion
// notification so the learner can switch away and come back.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// NotifyCommandFinished announces that a long-running command completed.
func (n *Notifier) NotifyCommandFinished(command string, took time.Duration, succeeded bool) error {
	title := "gitcoach: command finished"
	verdict := "finished"
	if !succeeded {
		verdict = "needs your attention"
	}
	message := fmt.Sprintf("%q %s after %s.", command, verdict, took.Round(time.Second))
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
