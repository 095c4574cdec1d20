//go:build windows

package platform

// Toast notifications are already the primary mechanism on Windows, so
// there is no separate command to fall back to.
func notifyCommand(title, message string) error {
	return ErrNotifyUnsupported
}
