//go:build !windows

package suspend

import (
	"fmt"

	"golang.org/x/sys/unix"
)

type signalStopper struct{}

// Stop sends SIGTSTP to this process only. Signalling the whole process
// group would also stop a wrapper shell that launched us and break fg.
func (signalStopper) Stop() error {
	if err := unix.Kill(unix.Getpid(), unix.SIGTSTP); err != nil {
		return fmt.Errorf("failed to send SIGTSTP: %w", err)
	}
	return nil
}

func defaultStopper() Stopper {
	return signalStopper{}
}
