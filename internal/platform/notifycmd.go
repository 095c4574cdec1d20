package platform

import "errors"

// ErrNotifyUnsupported indicates no native notification command exists
// on this system.
var ErrNotifyUnsupported = errors.New("native notification unsupported")

// NotifyCommand shows a notification through an OS-native command. It
// is the fallback path for when the primary notification mechanism
// fails.
func NotifyCommand(title, message string) error {
	return notifyCommand(title, message)
}
