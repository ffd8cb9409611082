//go:build unix

package transport

import (
	"syscall"

	"go.bug.st/serial"
	"golang.org/x/sys/unix"
)

var portErrnos = map[serial.PortErrorCode]syscall.Errno{
	serial.PortBusy:               unix.EBUSY,
	serial.PortNotFound:           unix.ENOENT,
	serial.InvalidSerialPort:      unix.ENOTTY,
	serial.PermissionDenied:       unix.EACCES,
	serial.InvalidSpeed:           unix.EINVAL,
	serial.InvalidDataBits:        unix.EINVAL,
	serial.InvalidParity:          unix.EINVAL,
	serial.InvalidStopBits:        unix.EINVAL,
	serial.InvalidTimeoutValue:    unix.EINVAL,
	serial.ErrorEnumeratingPorts:  unix.EIO,
	serial.PortClosed:             unix.EBADF,
	serial.FunctionNotImplemented: unix.ENOSYS,
}
