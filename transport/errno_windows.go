package transport

import (
	"syscall"

	"go.bug.st/serial"
	"golang.org/x/sys/windows"
)

// go.bug.st/serial reports ERROR_ACCESS_DENIED from CreateFile as PortBusy.
var portErrnos = map[serial.PortErrorCode]syscall.Errno{
	serial.PortBusy:               windows.ERROR_ACCESS_DENIED,
	serial.PortNotFound:           windows.ERROR_FILE_NOT_FOUND,
	serial.InvalidSerialPort:      windows.ERROR_INVALID_HANDLE,
	serial.PermissionDenied:       windows.ERROR_ACCESS_DENIED,
	serial.InvalidSpeed:           windows.ERROR_INVALID_PARAMETER,
	serial.InvalidDataBits:        windows.ERROR_INVALID_PARAMETER,
	serial.InvalidParity:          windows.ERROR_INVALID_PARAMETER,
	serial.InvalidStopBits:        windows.ERROR_INVALID_PARAMETER,
	serial.InvalidTimeoutValue:    windows.ERROR_INVALID_PARAMETER,
	serial.ErrorEnumeratingPorts:  windows.ERROR_GEN_FAILURE,
	serial.PortClosed:             windows.ERROR_INVALID_HANDLE,
	serial.FunctionNotImplemented: windows.ERROR_NOT_SUPPORTED,
}
