//go:build !unix && !windows

package transport

import (
	"syscall"

	"go.bug.st/serial"
)

var portErrnos = map[serial.PortErrorCode]syscall.Errno{}
