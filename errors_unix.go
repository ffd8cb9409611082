//go:build unix

package ledmatrix

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/unix"
)

const timeoutCode = Code(unix.ETIMEDOUT)

func platformCode(err error) (Code, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno), true
	}
	return 0, false
}

// formatPlatform renders an errno as "errno: ENAME: message".
func formatPlatform(code Code) string {
	errno := syscall.Errno(code)
	if name := unix.ErrnoName(errno); name != "" {
		return fmt.Sprintf("errno: %s: %s", name, errno.Error())
	}
	return fmt.Sprintf("errno: %d: %s", int(code), errno.Error())
}
