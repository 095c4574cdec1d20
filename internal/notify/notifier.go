package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"
)

// SendFunc delivers a single notification.
type SendFunc func(title, message string) error

// Notifier dispatches system notifications. Delivery is best effort:
// failures are logged and swallowed so a missing notification daemon
// never takes the app down.
type Notifier struct {
	send     SendFunc
	fallback SendFunc
	log      *logrus.Entry
}

// New creates a Notifier backed by the system notification mechanism,
// with an optional platform-command fallback.
func New(appName string, fallback SendFunc) *Notifier {
	beeep.AppName = appName
	return &Notifier{
		send: func(title, message string) error {
			// Alert rather than Notify so the reminder also makes a sound.
			return beeep.Alert(title, message, "")
		},
		fallback: fallback,
		log:      logrus.WithField("component", "notify"),
	}
}

// Send shows a notification, trying the fallback when the primary
// mechanism fails.
func (notifier *Notifier) Send(title, message string) {
	err := notifier.send(title, message)
	if err == nil {
		return
	}
	notifier.log.WithError(err).Warn("system notification failed")

	if notifier.fallback == nil {
		return
	}
	if err := notifier.fallback(title, message); err != nil {
		notifier.log.WithError(err).Warn("fallback notification failed")
	}
}
