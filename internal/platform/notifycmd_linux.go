//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

func notifyCommand(title, message string) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return ErrNotifyUnsupported
	}
	if err := exec.Command(path, title, message).Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
