//go:build !windows

package pause

import (
	"os"
	"syscall"
)

func sendInterrupt() {
	syscall.Kill(os.Getpid(), syscall.SIGINT)
}
