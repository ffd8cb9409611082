//go:build unix

package transport

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
	"golang.org/x/sys/unix"
)

func TestSerialOpenNotATerminal(t *testing.T) {
	_, err := NewSerial(Config{}).Open("/dev/null")
	require.Error(t, err)

	var pe *serial.PortError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, serial.InvalidSerialPort, pe.Code())

	var errno syscall.Errno
	require.True(t, errors.As(err, &errno))
	assert.Equal(t, unix.ENOTTY, errno)
}

func TestWithErrno(t *testing.T) {
	// The zero PortError carries the PortBusy code.
	err := withErrno(&serial.PortError{})
	assert.ErrorIs(t, err, unix.EBUSY)

	plain := errors.New("plain")
	assert.Same(t, plain, withErrno(plain))

	assert.ErrorIs(t, withErrno(unix.ENOENT), unix.ENOENT)
}
