//go:build !unix && !windows

package ledmatrix

import (
	"errors"
	"fmt"
	"syscall"
)

const timeoutCode = Code(syscall.ETIMEDOUT)

func platformCode(err error) (Code, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno), true
	}
	return 0, false
}

func formatPlatform(code Code) string {
	return fmt.Sprintf("errno: %d: %s", int(code), syscall.Errno(code).Error())
}
