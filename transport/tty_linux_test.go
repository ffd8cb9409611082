//go:build linux

package transport

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPTY returns the master side of a pseudo terminal and the path of its slave.
func openPTY(t *testing.T) (*os.File, string) {
	t.Helper()
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() { master.Close() })

	fd := int(master.Fd())
	if err := unix.IoctlSetPointerInt(fd, unix.TIOCSPTLCK, 0); err != nil {
		t.Skipf("unlockpt: %v", err)
	}
	n, err := unix.IoctlGetInt(fd, unix.TIOCGPTN)
	if err != nil {
		t.Skipf("ptsname: %v", err)
	}
	return master, fmt.Sprintf("/dev/pts/%d", n)
}

func TestTTYWriteRead(t *testing.T) {
	master, slave := openPTY(t)

	ch, err := NewTTY(Config{ReadTimeout: 200 * time.Millisecond}).Open(slave)
	require.NoError(t, err)
	defer ch.Close()

	frame := []byte{0x32, 0xAC, 0x20}
	n, err := ch.Write(frame)
	require.NoError(t, err)
	assert.Equal(t, len(frame), n)

	got := make([]byte, len(frame))
	_, err = master.Read(got)
	require.NoError(t, err)
	assert.Equal(t, frame, got)

	_, err = master.Write([]byte{0x02, 0x31, 0x01})
	require.NoError(t, err)

	buf := make([]byte, 32)
	n, err = ch.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x31, 0x01}, buf[:n])
}

func TestTTYReadTimeout(t *testing.T) {
	_, slave := openPTY(t)

	ch, err := NewTTY(Config{ReadTimeout: 100 * time.Millisecond}).Open(slave)
	require.NoError(t, err)
	defer ch.Close()

	start := time.Now()
	_, err = ch.Read(make([]byte, 32))
	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestTTYClosed(t *testing.T) {
	_, slave := openPTY(t)

	ch, err := NewTTY(DefaultConfig()).Open(slave)
	require.NoError(t, err)
	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())

	_, err = ch.Write([]byte{1})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = ch.Read(make([]byte, 1))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestTTYWriteError(t *testing.T) {
	fd, err := unix.Open("/dev/null", unix.O_RDONLY|unix.O_CLOEXEC, 0)
	require.NoError(t, err)
	ch := &ttyChannel{fd: fd}
	defer ch.Close()

	n, err := ch.Write([]byte{0x32, 0xAC, 0x00})
	assert.ErrorIs(t, err, unix.EBADF)
	assert.Zero(t, n)
}

func TestTTYOpenErrors(t *testing.T) {
	_, err := NewTTY(DefaultConfig()).Open("/dev/does-not-exist-ledmatrix")
	require.Error(t, err)
	var errno syscall.Errno
	assert.True(t, errors.As(err, &errno))
	assert.Equal(t, unix.ENOENT, errno)

	_, err = NewTTY(Config{BaudRate: 12345}).Open("/dev/null")
	assert.ErrorContains(t, err, "unsupported baud rate")
}

func TestVtime(t *testing.T) {
	assert.Equal(t, uint8(10), vtime(time.Second))
	assert.Equal(t, uint8(1), vtime(10*time.Millisecond))
	assert.Equal(t, uint8(2), vtime(150*time.Millisecond))
	assert.Equal(t, uint8(255), vtime(time.Minute))
}
