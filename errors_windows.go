//go:build windows

package ledmatrix

import (
	"errors"

	"golang.org/x/sys/windows"
)

const timeoutCode = Code(windows.ERROR_TIMEOUT)

func platformCode(err error) (Code, bool) {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return Code(errno), true
	}
	return 0, false
}

// formatPlatform renders a GetLastError value as "win32: message".
func formatPlatform(code Code) string {
	return "win32: " + windows.Errno(code).Error()
}
