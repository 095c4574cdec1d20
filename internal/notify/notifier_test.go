package notify

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testNotifier(send, fallback SendFunc) *Notifier {
	return &Notifier{
		send:     send,
		fallback: fallback,
		log:      logrus.WithField("component", "notify"),
	}
}

func TestSendPrimarySucceeds(t *testing.T) {
	fallbackCalled := false
	notifier := testNotifier(
		func(title, message string) error { return nil },
		func(title, message string) error {
			fallbackCalled = true
			return nil
		},
	)

	notifier.Send("Test", "hello")
	assert.False(t, fallbackCalled)
}

func TestSendFallsBackOnFailure(t *testing.T) {
	var gotTitle, gotMessage string
	notifier := testNotifier(
		func(title, message string) error { return errors.New("no notification daemon") },
		func(title, message string) error {
			gotTitle, gotMessage = title, message
			return nil
		},
	)

	notifier.Send("Clock In Reminder", "It's time to clock in!")
	assert.Equal(t, "Clock In Reminder", gotTitle)
	assert.Equal(t, "It's time to clock in!", gotMessage)
}

func TestSendSwallowsAllFailures(t *testing.T) {
	notifier := testNotifier(
		func(title, message string) error { return errors.New("primary down") },
		func(title, message string) error { return errors.New("fallback down") },
	)

	// Must not panic or surface an error; delivery is best effort.
	notifier.Send("Test", "hello")
}

func TestSendWithoutFallback(t *testing.T) {
	notifier := testNotifier(
		func(title, message string) error { return errors.New("primary down") },
		nil,
	)

	notifier.Send("Test", "hello")
}
